package automate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
)

// emailPattern matches email-like substrings.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// ExtractEmails returns all email-like substrings of 'text', in order.
func ExtractEmails(text string) []string {
	return emailPattern.FindAllString(text, -1)
}

// Extract reads the input file, and saves the addresses it contains in the
// emails file, one per line.
//
// No output file is written when there is no address. A missing input file is
// reported to the user and is not an error.
func (r *Runner) Extract() error {
	r.section("2. Email Extraction")

	content, err := os.ReadFile(r.Config.InputFile)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(r.Out, "Error: Input file '%s' not found. Please run setup first.\n", r.Config.InputFile)
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot read input file: %w", err)
	}

	emails := ExtractEmails(string(content))
	if len(emails) == 0 {
		fmt.Fprintln(r.Out, "No emails found in the input file.")
		return nil
	}
	if err := os.WriteFile(r.Config.EmailsFile, []byte(strings.Join(emails, "\n")), 0644); err != nil {
		return fmt.Errorf("cannot save extracted emails: %w", err)
	}
	r.Log.Debug().Int("count", len(emails)).Str("file", r.Config.EmailsFile).Msg("emails extracted")
	fmt.Fprintf(r.Out, "Successfully extracted %d emails.\n", len(emails))
	fmt.Fprintf(r.Out, "Emails saved to: '%s'\n", r.Config.EmailsFile)
	return nil
}
