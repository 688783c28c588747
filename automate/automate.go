// Package automate implements a small task automation demo: it prepares a
// sample input file, extracts email addresses from it, fetches the title of a
// web page and finally runs a rule based chat loop.
//
// Every step is independent and reports its own failures, so that one failing
// step does not prevent the next ones from running.
package automate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/phuslu/log"
)

// Config holds the file names and remote address used by the demo.
type Config struct {
	InputFile  string        // sample input, containing email addresses
	EmailsFile string        // extracted addresses, one per line
	TitleFile  string        // scraped page title
	TargetURL  string        // page to scrape
	Timeout    time.Duration // for the http request
	ReplyDelay time.Duration // pause before each chat reply
	Cache      bool          // cache http responses on disk for the day
}

// DefaultConfig returns the demo default configuration.
func DefaultConfig() Config {
	return Config{
		InputFile:  "emails.txt",
		EmailsFile: "extracted_emails.txt",
		TitleFile:  "website_title.txt",
		TargetURL:  "https://example.com",
		Timeout:    10 * time.Second,
		ReplyDelay: 500 * time.Millisecond,
	}
}

// Runner runs the demo steps.
type Runner struct {
	Config Config
	Out    io.Writer   // user facing output
	Log    *log.Logger // diagnostics
	Client *http.Client
}

// NewRunner returns a Runner for 'cfg' printing to 'out'.
// A nil logger discards diagnostics.
func NewRunner(cfg Config, out io.Writer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = &log.Logger{Writer: &log.IOWriter{Writer: io.Discard}}
	}
	client := &http.Client{Timeout: cfg.Timeout}
	if cfg.Cache {
		client.Transport = &diskCache{base: http.DefaultTransport, log: logger}
	}
	return &Runner{Config: cfg, Out: out, Log: logger, Client: client}
}

func (r *Runner) section(title string) {
	fmt.Fprintf(r.Out, "--- %s ---\n", title)
}

func (r *Runner) endSection() {
	fmt.Fprintln(r.Out, strings.Repeat("-", 30))
}

// Run executes the file steps, then the title fetch unless 'skipFetch', and
// then the chat loop reading from 'in' unless 'in' is nil.
func (r *Runner) Run(ctx context.Context, in io.Reader, skipFetch bool) error {
	fmt.Fprintln(r.Out, "Starting Combined Tasks...")

	if err := r.Setup(); err != nil {
		// nothing else can work without the input file
		return err
	}
	if err := r.Extract(); err != nil {
		fmt.Fprintf(r.Out, "Error: %v\n", err)
	}
	r.endSection()

	if !skipFetch {
		if err := r.Scrape(ctx); err != nil {
			fmt.Fprintf(r.Out, "An error occurred during web request: %v\n", err)
		}
		r.endSection()
	}

	if in != nil {
		if err := r.Chat(ctx, in); err != nil {
			return err
		}
	}
	fmt.Fprintln(r.Out, "All tasks complete. Check your directory for the output files!")
	return nil
}
