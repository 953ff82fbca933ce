package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"scriptport.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Convert ConvertCmd `cmd:"" help:"Convert QuantumultX scripts into Loon and Surge configs"`
	Init    InitCmd    `cmd:"" help:"Initialize a new configuration file"`
	Watch   WatchCmd   `cmd:"" help:"Re-run the conversion whenever the source directory changes"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(c.Verbose)}))
	slog.SetDefault(logger)
	return nil
}

// parseLogLevel resolves the level from the verbose flag and SCRIPTPORT_LOG_LEVEL.
func parseLogLevel(verbose bool) slog.Level {
	switch strings.ToLower(os.Getenv("SCRIPTPORT_LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
