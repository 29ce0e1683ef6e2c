package main

import (
	"context"
	"os"
	"runtime/debug"

	"github.com/urfave/cli/v2"

	"github.com/adamluzsi/rdfstream/internal/logger"
)

var version = "(devel)"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "panic", logger.Field("panic", r), logger.Field("stack", string(debug.Stack())))
			os.Exit(1)
		}
	}()

	cli.VersionFlag.(*cli.BoolFlag).Aliases = []string{"V"}
	app := newApp(os.Stdout, os.Stderr)
	if err := app.RunContext(ctx, os.Args); err != nil {
		logger.Error(ctx, "failed", logger.ErrField(err))
		os.Exit(1)
	}
}
