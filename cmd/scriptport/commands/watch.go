package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/scriptport/internal/config"
	"git.home.luguber.info/inful/scriptport/internal/logfields"
	"git.home.luguber.info/inful/scriptport/internal/porter"
	"git.home.luguber.info/inful/scriptport/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Debounce time.Duration `help:"Delay before re-running after a change" default:"2s"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runOnce := func() {
		if _, err := porter.Run(cfg); err != nil {
			slog.Error("Conversion run failed", logfields.Error(err))
		}
	}

	// Initial pass before watching, so outputs exist even without changes.
	runOnce()

	watcher, err := watch.New(cfg.SourceDir, w.Debounce, runOnce)
	if err != nil {
		return err
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	slog.Info("Shutdown signal received, stopping watcher")
	return nil
}
