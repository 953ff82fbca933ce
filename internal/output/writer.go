// Package output persists generated dialect text and reports change status
// back to the calling automation.
package output

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/scriptport/internal/logfields"
)

// Write persists content to dir/base+ext, creating dir as needed. It reports
// whether the destination actually changed: byte-identical existing content is
// left untouched. I/O failures are logged and reported as unchanged so one bad
// destination cannot abort a run.
func Write(dir, base, content, ext string) bool {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.Error("Failed to create output directory", logfields.Path(dir), logfields.Error(err))
		return false
	}

	path := filepath.Join(dir, base+ext)
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, []byte(content)) {
		slog.Debug("Output unchanged", logfields.Path(path))
		return false
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		slog.Error("Failed to write output file", logfields.Path(path), logfields.Error(err))
		return false
	}

	slog.Info("Output written", logfields.Path(path))
	return true
}
