// Package main provides the entry point for the amphipod CLI.
package main

import (
	"context"
	"os"

	"github.com/katalvlaran/amphipod/cli"
	"github.com/katalvlaran/amphipod/logging"
)

func main() {
	logging.Init(logging.DefaultConfig())

	app := cli.New()
	if err := app.Execute(context.Background()); err != nil {
		logging.NewEvent(logging.Get().Error()).
			Add(logging.Component("cli")).
			Add(logging.ErrorField(err)).
			Msg("command failed")
		os.Exit(1)
	}
}
