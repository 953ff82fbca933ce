package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyFile    = "file"
	KeyPath    = "path"
	KeySource  = "source"
	KeyDialect = "dialect"
	KeyCount   = "count"
	KeyChanged = "changed"
	KeyError   = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func File(name string) slog.Attr    { return slog.String(KeyFile, name) }
func Path(p string) slog.Attr       { return slog.String(KeyPath, p) }
func Source(s string) slog.Attr     { return slog.String(KeySource, s) }
func Dialect(d string) slog.Attr    { return slog.String(KeyDialect, d) }
func Count(n int) slog.Attr         { return slog.Int(KeyCount, n) }
func Changed(c bool) slog.Attr      { return slog.Bool(KeyChanged, c) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
