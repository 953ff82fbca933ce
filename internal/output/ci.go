package output

import (
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/scriptport/internal/logfields"
)

// ChangeFlagKey is the output key the calling pipeline reads to decide whether
// to commit the generated configs.
const ChangeFlagKey = "has_file_changes"

// githubOutputEnv names the file GitHub Actions provides for step outputs.
const githubOutputEnv = "GITHUB_OUTPUT"

// EmitChangeFlag appends the run-level change flag to the CI output file.
// Outside of CI the env var is unset and this is a no-op.
func EmitChangeFlag(changed bool) {
	path := os.Getenv(githubOutputEnv)
	if path == "" {
		slog.Debug("No CI output file configured, skipping change flag", logfields.Changed(changed))
		return
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Warn("Failed to open CI output file", logfields.Path(path), logfields.Error(err))
		return
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := fmt.Fprintf(f, "%s=%t\n", ChangeFlagKey, changed); err != nil {
		slog.Warn("Failed to write change flag", logfields.Path(path), logfields.Error(err))
	}
}
