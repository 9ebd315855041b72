package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/lox/blackjack-cli/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config string `short:"c" default:"${config_file}" help:"Path to HCL config file" type:"path"`
	Debug  bool   `help:"Log at debug level regardless of config"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"withargs" help:"Play blackjack at the console (default)"`
	Simulate SimulateCmd      `cmd:"" help:"Play many headless sessions with a bot and report results"`
	History  HistoryCmd       `cmd:"" help:"Show sessions recorded in a history file"`
}

func main() {
	// A .env file may supply BLACKJACK_SEED and friends; it is optional.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-player blackjack against the dealer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
