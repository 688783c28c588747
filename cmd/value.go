package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

// valueCmd holds the flags for the 'value' subcommand.
type valueCmd struct {
	markdown bool
	export   string
	dir      string
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "value the holdings given as arguments" }
func (*valueCmd) Usage() string {
	return `folio value [-md] [-export txt|csv] [-dir <directory>] <ticker> <quantity> ...

  Values the holdings given as ticker and quantity pairs, and displays the
  portfolio summary. A ticker given twice keeps the last quantity.

Usage Examples:
$ folio value AAPL 10 TSLA 2
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.markdown, "md", false, "render the summary as markdown")
	f.StringVar(&c.export, "export", "", "also export the summary, 'txt' or 'csv'")
	f.StringVar(&c.dir, "dir", "", "Directory to save exports into. Defaults to the configured export directory.")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var format renderer.Format
	if c.export != "" {
		var err error
		if format, err = renderer.ParseFormat(c.export); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	cfg, logger, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	cat, err := cfg.BuildCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		return subcommands.ExitFailure
	}

	holdings, err := parseHoldings(cat, cfg.DoneKeyword, f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	v, err := folio.Value(holdings, cat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	now := time.Now()
	if c.markdown {
		printMarkdown(renderer.Markdown(renderer.NewValuation(v, now)))
	} else {
		renderer.Summary(os.Stdout, v)
	}

	if format != "" {
		dir := c.dir
		if dir == "" {
			dir = cfg.ExportDir
		}
		path, err := renderer.Export(dir, format, v, now)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
			return subcommands.ExitFailure
		}
		logger.Info().Str("file", path).Msg("portfolio exported")
		fmt.Fprintf(os.Stdout, "✓ Portfolio saved to %s\n", path)
	}
	return subcommands.ExitSuccess
}

// parseHoldings reads ticker and quantity pairs with the same rules as the interactive input.
// The done keyword has no meaning here and is rejected.
func parseHoldings(cat *folio.Catalog, doneKeyword string, args []string) (*folio.Portfolio, error) {
	if doneKeyword == "" {
		doneKeyword = folio.DefaultDoneKeyword
	}
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, fmt.Errorf("expecting ticker and quantity pairs, got %d arguments", len(args))
	}
	c := folio.NewCollector()
	for i := 0; i < len(args); i += 2 {
		line := args[i] + " " + args[i+1]
		e := folio.Classify(line, cat, doneKeyword)
		if e.Kind == folio.EntryDone {
			e = folio.Entry{Kind: folio.EntryRejected, Err: folio.ErrInvalidFormat}
		}
		if out := c.Apply(e); out.Err != nil {
			return nil, fmt.Errorf("invalid holding %q: %w", line, out.Err)
		}
	}
	return c.Portfolio(), nil
}
