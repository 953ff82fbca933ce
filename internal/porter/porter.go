// Package porter runs the conversion batch: enumerate QuantumultX sources,
// skip unchanged content via the hash cache, extract, render both target
// dialects and persist the results.
package porter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"git.home.luguber.info/inful/scriptport/internal/config"
	"git.home.luguber.info/inful/scriptport/internal/hashstore"
	"git.home.luguber.info/inful/scriptport/internal/logfields"
	"git.home.luguber.info/inful/scriptport/internal/output"
	"git.home.luguber.info/inful/scriptport/internal/render"
	"git.home.luguber.info/inful/scriptport/internal/script"
)

// Run executes one conversion pass and reports whether any generated file
// changed. Per-file failures are logged and isolated; only the inability to
// set up mandatory directories is fatal.
func Run(cfg *config.Config) (bool, error) {
	for _, dir := range []string{cfg.LoonDir, cfg.SurgeDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	entries, err := os.ReadDir(cfg.SourceDir)
	if err != nil {
		return false, fmt.Errorf("failed to read source directory %s: %w", cfg.SourceDir, err)
	}

	hashes := hashstore.Load(cfg.CachePath)

	changed := false
	processed, skipped := 0, 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if !slices.Contains(cfg.SourceExtensions, ext) {
			continue
		}

		// Cache keys are forward-slash relative paths regardless of platform.
		key := filepath.ToSlash(filepath.Join(cfg.SourceDir, name))
		data, err := os.ReadFile(filepath.Join(cfg.SourceDir, name))
		if err != nil {
			slog.Error("Failed to read source file, skipping", logfields.File(name), logfields.Error(err))
			continue
		}

		digest := hashstore.Digest(data)
		if hashes[key] == digest {
			slog.Debug("Source unchanged, skipping", logfields.File(name))
			skipped++
			continue
		}

		base := strings.TrimSuffix(name, ext)
		rec := script.Extract(string(data), base)
		if cfg.Author != "" {
			rec.Author = cfg.Author
		}

		// The digest records "last seen content", independent of whether the
		// outputs below actually change.
		hashes[key] = digest

		if len(rec.Patterns) == 0 && rec.ScriptPath == "" {
			slog.Warn("No rewrite pattern or script path found, nothing to render", logfields.File(name))
			continue
		}

		loonChanged := output.Write(cfg.LoonDir, base, render.Loon(rec), cfg.LoonExtension)
		surgeChanged := output.Write(cfg.SurgeDir, base, render.Surge(rec), cfg.SurgeExtension)
		changed = changed || loonChanged || surgeChanged
		processed++

		slog.Info("Converted script",
			logfields.File(name),
			slog.Bool(render.DialectLoon, loonChanged),
			slog.Bool(render.DialectSurge, surgeChanged))
	}

	hashstore.Save(cfg.CachePath, hashes)
	output.EmitChangeFlag(changed)

	slog.Info("Conversion run complete",
		slog.Int("processed", processed),
		slog.Int("skipped", skipped),
		logfields.Changed(changed))

	return changed, nil
}
