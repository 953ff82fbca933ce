package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/scriptport/internal/config"
	"git.home.luguber.info/inful/scriptport/internal/porter"
)

// ConvertCmd implements the 'convert' command.
type ConvertCmd struct {
	Source string `short:"s" help:"Override the source directory"`
}

func (cmd *ConvertCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Source != "" {
		cfg.SourceDir = cmd.Source
	}
	return RunConvert(cfg)
}

func RunConvert(cfg *config.Config) error {
	slog.Info("Starting conversion",
		slog.String("source", cfg.SourceDir),
		slog.String("loon", cfg.LoonDir),
		slog.String("surge", cfg.SurgeDir))

	changed, err := porter.Run(cfg)
	if err != nil {
		return err
	}

	// Friendly user-facing message on stdout.
	if changed {
		fmt.Println("Generated configs updated")
	} else {
		fmt.Println("Generated configs already up to date")
	}
	return nil
}
