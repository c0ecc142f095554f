package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docdraft/internal/config"
)

// Global carries state shared by every subcommand.
type Global struct {
	Logger *slog.Logger
	// Out receives command output (plan listings, init messages).
	Out io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (missing default file means built-in defaults)" default:"docdraft.yaml" env:"DOCDRAFT_CONFIG"`
	EnvFile string           `name:"env-file" help:"Replay CI environment variables from a dotenv file" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Plan  PlanCmd  `cmd:"" help:"Show which pages would be built in full and which as drafts"`
	Build BuildCmd `cmd:"" help:"Discover, classify and render documentation"`
	Init  InitCmd  `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing and sets up logging from -v and
// DOCDRAFT_LOG_LEVEL. Commands refine it once the config is loaded.
func (c *CLI) AfterApply(g *Global) error {
	level := parseLogLevel(c.Verbose, os.Getenv(envLogLevel), "")
	g.Logger = newLogger(os.Stderr, level, config.LogFormatText)
	slog.SetDefault(g.Logger)
	if g.Out == nil {
		g.Out = os.Stdout
	}
	return nil
}
