package main

import (
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docdraft/cmd/docdraft/commands"
	ferrors "git.home.luguber.info/inful/docdraft/internal/foundation/errors"
	"git.home.luguber.info/inful/docdraft/internal/version"
)

func main() {
	cli := &commands.CLI{}
	global := &commands.Global{Out: os.Stdout}
	parser := kong.Parse(cli,
		kong.Name("docdraft"),
		kong.Description("Build only the documentation pages a pull request changes; render the rest as drafts."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
	)

	err := parser.Run(cli)
	os.Exit(ferrors.NewCLIErrorAdapter(cli.Verbose, global.Logger).Report(err))
}
