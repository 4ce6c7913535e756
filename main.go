package main

import (
	"fmt"
	"log/slog"
	"os"

	"iconforge/check"
	"iconforge/gen"
	"iconforge/parallel"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Gen   gen.CLICmd   `cmd:"" help:"Generate sparkle icons" default:"withargs"`
	Check check.CLICmd `cmd:"" help:"Check that generated icons decode cleanly"`

	Workers int `help:"Number of parallel workers, 0 for one per CPU" default:"1"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("iconforge"),
		kong.Description("Generates square PNG icons of a purple gradient disc with a white sparkle glyph."),
	)

	var err error
	switch kctx.Command() {
	case "gen":
		pool := parallel.Start(cli.Workers)
		err = cli.Gen.Run(pool)
	case "check":
		err = cli.Check.Run()
	default:
		err = fmt.Errorf("unsupported operation: %s", kctx.Command())
	}

	if err != nil {
		slog.Error("failed", "cmd", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
