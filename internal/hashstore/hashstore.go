// Package hashstore persists the source-path -> content-digest cache that
// drives incremental conversion. Persistence is best effort: a missing or
// corrupt cache file degrades to a full run, never to a failure.
package hashstore

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/scriptport/internal/logfields"
)

// Digest returns the lowercase-hex SHA-256 digest of content.
func Digest(content []byte) string {
	h := sha256.Sum256(content)
	return hex.EncodeToString(h[:])
}

// Load reads the cache file. Absent or unparsable files yield an empty map.
func Load(path string) map[string]string {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("No cache file yet, starting empty", logfields.Path(path))
		} else {
			slog.Warn("Failed to read cache file, starting empty", logfields.Path(path), logfields.Error(err))
		}
		return map[string]string{}
	}

	var hashes map[string]string
	if err := json.Unmarshal(data, &hashes); err != nil {
		slog.Warn("Cache file is corrupt, starting empty", logfields.Path(path), logfields.Error(err))
		return map[string]string{}
	}
	if hashes == nil {
		hashes = map[string]string{}
	}
	return hashes
}

// Save overwrites the cache file with a pretty-printed serialization via an
// atomic temp-file rename. Failures are logged, not propagated.
func Save(path string, hashes map[string]string) {
	data, err := json.MarshalIndent(hashes, "", "  ")
	if err != nil {
		slog.Warn("Failed to serialize cache", logfields.Path(path), logfields.Error(err))
		return
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			slog.Warn("Failed to create cache directory", logfields.Path(dir), logfields.Error(err))
			return
		}
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		slog.Warn("Failed to write temporary cache file", logfields.Path(tempPath), logfields.Error(err))
		return
	}
	if err := os.Rename(tempPath, path); err != nil {
		slog.Warn("Failed to replace cache file", logfields.Path(path), logfields.Error(err))
	}
}
