package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/folio/automate"
	"github.com/google/subcommands"
)

// automateCmd holds the flags for the 'automate' subcommand.
type automateCmd struct {
	skipFetch bool
	skipChat  bool
}

func (*automateCmd) Name() string     { return "automate" }
func (*automateCmd) Synopsis() string { return "run the task automation demo" }
func (*automateCmd) Usage() string {
	return `folio automate [-skip-fetch] [-skip-chat]

  Creates a sample input file, extracts the email addresses it contains,
  saves the title of the configured web page, and starts a simple chatbot.
`
}

func (c *automateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.skipFetch, "skip-fetch", false, "do not fetch the web page title")
	f.BoolVar(&c.skipChat, "skip-chat", false, "do not start the chatbot")
}

func (c *automateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, logger, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	r := automate.NewRunner(cfg.AutomateConfig(), os.Stdout, logger)
	var in io.Reader = os.Stdin
	if c.skipChat {
		in = nil
	}
	if err := r.Run(ctx, in, c.skipFetch); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// chatCmd runs the chatbot alone.
type chatCmd struct{}

func (*chatCmd) Name() string     { return "chat" }
func (*chatCmd) Synopsis() string { return "start the rule based chatbot" }
func (*chatCmd) Usage() string {
	return `folio chat

  Starts the rule based chatbot of the automation demo. Type 'bye' to exit.
`
}

func (*chatCmd) SetFlags(_ *flag.FlagSet) {}

func (*chatCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, logger, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	r := automate.NewRunner(cfg.AutomateConfig(), os.Stdout, logger)
	if err := r.Chat(ctx, os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, "Chatbot failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
