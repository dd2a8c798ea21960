package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cfoust/gdlevel/pkg/config"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Set with -ldflags at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var CLI struct {
	Version  bool     `help:"Print version information and exit." short:"v"`
	Debug    bool     `help:"Whether to enable debug logging."`
	Settings []string `help:"Configuration files, applied in order over the defaults." short:"s" type:"path"`

	Decode struct {
		Kind string `arg:"" enum:"object,channel" help:"The kind of record: object or channel."`
		Text string `arg:"" help:"The record string."`
	} `cmd:"" help:"Print a record's fields as JSON."`

	Normalize struct {
		Kind string `arg:"" enum:"object,channel" help:"The kind of record: object or channel."`
		Text string `arg:"" help:"The record string."`
	} `cmd:"" help:"Rewrite a record string in canonical key order."`

	Edit struct {
		Kind string            `arg:"" enum:"object,channel" help:"The kind of record: object or channel."`
		Text string            `arg:"" help:"The record string."`
		Set  map[string]string `help:"Fields to assign, e.g. --set x=15 --set groups=1.2." short:"f"`
	} `cmd:"" help:"Change fields of a record and print the result."`

	Level struct {
		Stats struct {
			File string `arg:"" type:"existingfile" help:"A file containing a level string."`
		} `cmd:"" help:"Summarize a level."`

		Save struct {
			Name string `arg:"" help:"The name to save the level under."`
			File string `arg:"" type:"existingfile" help:"A file containing a level string."`
		} `cmd:"" help:"Save a level to the library."`

		Load struct {
			Name       string `arg:"" help:"The name of the level."`
			Compressed bool   `help:"Print the compressed form of the level."`
		} `cmd:"" help:"Print a level from the library."`

		List struct {
		} `cmd:"" help:"List the levels in the library."`
	} `cmd:"" help:"Work with whole levels."`

	Config struct {
	} `cmd:"" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("gdlevel"),
		kong.Description("inspect and edit Geometry Dash level data"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Version {
		fmt.Printf("gdlevel %s (commit %s)\n", Version, GitCommit)
		os.Exit(0)
	}

	settings, err := config.Process(CLI.Settings)
	if err != nil {
		writeError(err)
	}

	if level, err := zerolog.ParseLevel(settings.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	switch ctx.Command() {
	case "decode <kind> <text>":
		err = decodeCommand(os.Stdout, CLI.Decode.Kind, CLI.Decode.Text)
	case "normalize <kind> <text>":
		err = normalizeCommand(os.Stdout, CLI.Normalize.Kind, CLI.Normalize.Text)
	case "edit <kind> <text>":
		err = editCommand(os.Stdout, CLI.Edit.Kind, CLI.Edit.Text, CLI.Edit.Set)
	case "level stats <file>":
		err = statsCommand(os.Stdout, CLI.Level.Stats.File)
	case "level save <name> <file>":
		err = saveCommand(settings, CLI.Level.Save.Name, CLI.Level.Save.File)
	case "level load <name>":
		err = loadCommand(os.Stdout, settings, CLI.Level.Load.Name, CLI.Level.Load.Compressed)
	case "level list":
		err = listCommand(os.Stdout, settings)
	case "config":
		_, err = os.Stdout.Write(config.DEFAULT)
	}

	if err != nil {
		writeError(err)
	}
}
