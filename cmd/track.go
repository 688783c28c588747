package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
	"github.com/phuslu/log"
)

// trackCmd holds the flags for the 'track' subcommand.
type trackCmd struct {
	dir string
}

func (*trackCmd) Name() string     { return "track" }
func (*trackCmd) Synopsis() string { return "interactively value a portfolio and export it" }
func (*trackCmd) Usage() string {
	return `folio track [-dir <directory>]

  Asks for the holdings of a portfolio, one "TICKER QUANTITY" per line, until
  'done' is entered. Displays the portfolio summary, and offers to save it to a
  txt or csv file.
`
}

func (c *trackCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", "", "Directory to save exports into. Defaults to the configured export directory.")
}

func (c *trackCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	dir := c.dir
	if dir == "" {
		dir = cfg.ExportDir
	}

	s := &session{
		out:         os.Stdout,
		in:          os.Stdin,
		log:         logger,
		catalog:     cat,
		doneKeyword: cfg.DoneKeyword,
		dir:         dir,
		now:         time.Now,
	}
	if err := s.run(); err != nil {
		if errors.Is(err, folio.ErrInputClosed) {
			fmt.Fprintln(os.Stderr, "\nInput closed, portfolio not saved.")
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// session is a single interactive tracking session.
type session struct {
	out         io.Writer
	in          io.Reader
	log         *log.Logger
	catalog     *folio.Catalog
	doneKeyword string
	dir         string
	now         func() time.Time

	exported string // path of the export, if any
}

func (s *session) run() error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, strings.Repeat("=", 60))
	fmt.Fprintln(s.out, "WELCOME TO STOCK PORTFOLIO TRACKER")
	fmt.Fprintln(s.out, strings.Repeat("=", 60))
	renderer.Catalog(s.out, s.catalog)

	p := folio.NewPrompter(s.out, s.in)
	if s.doneKeyword != "" {
		p.DoneKeyword = s.doneKeyword
	}
	p.Listing = renderer.Catalog

	holdings, err := p.CollectPortfolio(s.catalog)
	if err != nil {
		return err
	}
	s.log.Debug().Int("holdings", holdings.Len()).Msg("portfolio collected")

	v, err := folio.Value(holdings, s.catalog)
	if err != nil {
		return err
	}
	renderer.Summary(s.out, v)

	save, err := p.YesNo("Save portfolio to file? (yes/no): ")
	if err != nil {
		return err
	}
	if !save {
		fmt.Fprintln(s.out, "Portfolio not saved.")
	} else {
		choice, err := p.Choice("Choose format (txt/csv): ", string(renderer.FormatText), string(renderer.FormatCSV))
		if err != nil {
			return err
		}
		format, err := renderer.ParseFormat(choice)
		if err != nil {
			return err
		}
		path, err := renderer.Export(s.dir, format, v, s.now())
		if err != nil {
			return fmt.Errorf("cannot save portfolio: %w", err)
		}
		s.exported = path
		s.log.Info().Str("file", path).Str("format", string(format)).Msg("portfolio exported")
		fmt.Fprintf(s.out, "✓ Portfolio saved to %s\n", path)
	}

	fmt.Fprintln(s.out, "\nThank you for using Stock Portfolio Tracker!")
	return nil
}
