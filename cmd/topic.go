package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/folio/docs"
	"github.com/google/subcommands"
)

// topicCmd holds the flags for the 'topic' subcommand.
type topicCmd struct {
	list bool
	raw  bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation topics" }
func (*topicCmd) Usage() string {
	return `folio topic [-list] [-raw] [<topic>...]

  Shows the documentation for the given topics, '*' for all of them. Without
  a topic, shows the documentation index.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "list the available topics")
	f.BoolVar(&c.raw, "raw", false, "print the markdown source instead of rendering it")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		if err := listTopics(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading topic: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.raw {
		fmt.Print(doc)
		return subcommands.ExitSuccess
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// listTopics prints each topic name with the title of its first heading.
func listTopics(w io.Writer) error {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return err
	}
	for _, t := range topics {
		content, err := docs.GetTopic(t)
		if err != nil {
			return err
		}
		title, _, _ := strings.Cut(content, "\n")
		fmt.Fprintf(w, "%-10s %s\n", t, strings.TrimPrefix(title, "# "))
	}
	return nil
}
