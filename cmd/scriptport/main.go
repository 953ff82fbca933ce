package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/scriptport/cmd/scriptport/commands"
	"git.home.luguber.info/inful/scriptport/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("scriptport"),
		kong.Description("Convert QuantumultX rewrite scripts into Loon plugins and Surge modules"),
		kong.Vars{"version": version.Version},
	)

	if err := ctx.Run(&commands.Global{Logger: slog.Default()}, &cli); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
