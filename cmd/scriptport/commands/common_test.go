package commands

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	t.Setenv("SCRIPTPORT_LOG_LEVEL", "")
	require.Equal(t, slog.LevelInfo, parseLogLevel(false))
	require.Equal(t, slog.LevelDebug, parseLogLevel(true))

	t.Setenv("SCRIPTPORT_LOG_LEVEL", "warn")
	require.Equal(t, slog.LevelWarn, parseLogLevel(false))

	// Env var wins over the verbose flag, case-insensitively.
	t.Setenv("SCRIPTPORT_LOG_LEVEL", "ERROR")
	require.Equal(t, slog.LevelError, parseLogLevel(true))
}
