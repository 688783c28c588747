// Package cmd implements the CLI application to value a portfolio and run the automation demo.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/phuslu/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&trackCmd{}, "portfolio")
	c.Register(&valueCmd{}, "portfolio")
	c.Register(&catalogCmd{}, "portfolio")

	c.Register(&automateCmd{}, "automation")
	c.Register(&chatCmd{}, "automation")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", "folio.toml", "Path to the TOML configuration file")
	logLevel   = flag.String("log-level", "", "Log level (debug, info, warn, error). Overrides the configuration.")
	Verbose    = flag.Bool("v", false, "verbose logging, same as -log-level debug")
)

// loadConfig loads the application configuration and creates its logger.
func loadConfig() (*Config, *log.Logger, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return nil, nil, err
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *Verbose {
		cfg.LogLevel = "debug"
	}
	logger := NewLogger(cfg.LogLevel, os.Stderr)
	logger.Debug().Str("config", *configFile).Str("currency", cfg.Currency).Msg("configuration loaded")
	return cfg, logger, nil
}

// NewLogger returns a console logger writing to 'w' at the given level.
func NewLogger(level string, w io.Writer) *log.Logger {
	if level == "" {
		level = "info"
	}
	return &log.Logger{
		Level:  log.ParseLevel(strings.ToLower(level)),
		Writer: &log.ConsoleWriter{Writer: w, EndWithMessage: true},
	}
}

// printMarkdown renders markdown for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
