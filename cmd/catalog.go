package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// catalogCmd holds the flags for the 'catalog' subcommand.
type catalogCmd struct {
	json bool
}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "display the available stocks and their prices" }
func (*catalogCmd) Usage() string {
	return `folio catalog [-json]

  Displays the catalog of available stocks. With -json, prints it in the
  catalog import format instead.
`
}

func (c *catalogCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the catalog as JSON, in the catalog import format")
}

func (c *catalogCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, _, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	cat, err := cfg.BuildCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.json {
		renderer.Catalog(os.Stdout, cat)
		return subcommands.ExitSuccess
	}
	if err := folio.ExportCatalog(os.Stdout, cat); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
