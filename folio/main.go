// Command folio values a stock portfolio and runs the task automation demo.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/folio/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
func completion() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":    predict.Files("*.toml"),
			"log-level": predict.Set{"debug", "info", "warn", "error"},
			"v":         predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"track": {Flags: map[string]complete.Predictor{"dir": predict.Dirs("*")}},
			"value": {Flags: map[string]complete.Predictor{
				"md":     predict.Nothing,
				"export": predict.Set{"txt", "csv"},
				"dir":    predict.Dirs("*"),
			}},
			"catalog":  {Flags: map[string]complete.Predictor{"json": predict.Nothing}},
			"automate": {Flags: map[string]complete.Predictor{"skip-fetch": predict.Nothing, "skip-chat": predict.Nothing}},
			"chat":     {},
			"topic": {
				Flags: map[string]complete.Predictor{"list": predict.Nothing, "raw": predict.Nothing},
				Args:  predict.Set{"readme", "track", "value", "automate", "config", "*"},
			},
		},
	}
}

func main() {
	completion().Complete("folio")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(c *subcommands.Commander, name string) (found bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}
