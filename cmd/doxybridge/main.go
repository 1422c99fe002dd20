package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/doxybridge/cmd/doxybridge/commands"
	"git.home.luguber.info/inful/doxybridge/internal/foundation/errors"
	"git.home.luguber.info/inful/doxybridge/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("doxybridge"),
		kong.Description("Render extracted API documentation trees into document trees"),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	global := &commands.Global{
		Logger: slog.Default(),
		RunID:  uuid.NewString(),
		Stdout: os.Stdout,
	}
	err := ctx.Run(global, cli)
	errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
