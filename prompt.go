package folio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// ErrInputClosed is returned when the user input ends before a question is answered.
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on a line oriented terminal.
type Prompter struct {
	w io.Writer
	r *bufio.Reader

	// DoneKeyword ends the portfolio input. Defaults to DefaultDoneKeyword.
	DoneKeyword string
	// Listing prints the catalog after an unknown ticker. Optional.
	Listing func(w io.Writer, cat *Catalog)
}

// NewPrompter creates a Prompter that writes prompts and diagnostics to 'w'
// and reads answers from 'r'.
func NewPrompter(w io.Writer, r io.Reader) *Prompter {
	return &Prompter{w: w, r: bufio.NewReader(r), DoneKeyword: DefaultDoneKeyword}
}

// readLine prints the prompt and reads a single line, without its line terminator.
func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.w, prompt)
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimRight(line, "\r\n"), nil
			}
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// CollectPortfolio reads holdings until the user types the done keyword.
//
// Every invalid line is reported and the user is asked again, as many times
// as needed.
func (p *Prompter) CollectPortfolio(cat *Catalog) (*Portfolio, error) {
	done := p.DoneKeyword
	if done == "" {
		done = DefaultDoneKeyword
	}
	fmt.Fprintf(p.w, "Enter your stock portfolio (type '%s' when finished)\n", done)
	fmt.Fprintf(p.w, "Format: Stock Name Quantity\n\n")

	c := NewCollector()
	prompt := fmt.Sprintf("Enter stock and quantity (or '%s'): ", done)
	for c.State() == Collecting {
		line, err := p.readLine(prompt)
		if err != nil {
			return nil, err
		}
		out := c.Apply(Classify(line, cat, done))
		p.report(out, cat)
	}
	return c.Portfolio(), nil
}

// report prints the user facing diagnostic for an outcome.
func (p *Prompter) report(out Outcome, cat *Catalog) {
	switch {
	case out.Err == nil && out.Entry.Kind == EntryAdd:
		fmt.Fprintf(p.w, "✓ Added %s shares of %s\n", out.Entry.Quantity, out.Entry.Ticker)
	case out.Err == nil:
	case errors.Is(out.Err, ErrEmptyPortfolio):
		fmt.Fprintln(p.w, "Portfolio is empty! Please add at least one stock.")
	case errors.Is(out.Err, ErrInvalidFormat):
		fmt.Fprintln(p.w, "Invalid format! Please enter stock name and quantity (e.g., AAPL 10)")
	case errors.Is(out.Err, ErrTickerNotFound):
		fmt.Fprintf(p.w, "'%s' not found in available stocks. Please try again.\n", out.Entry.Ticker)
		if p.Listing != nil {
			p.Listing(p.w, cat)
		}
	case errors.Is(out.Err, ErrInvalidQuantity):
		fmt.Fprintln(p.w, "Invalid quantity! Please enter a number.")
	case errors.Is(out.Err, ErrNonPositiveQuantity):
		fmt.Fprintln(p.w, "Quantity must be positive!")
	default:
		fmt.Fprintf(p.w, "Error: %v\n", out.Err)
	}
}

// YesNo asks 'question' until the user answers yes, y, no or n.
func (p *Prompter) YesNo(question string) (bool, error) {
	for {
		line, err := p.readLine(question)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
		fmt.Fprintln(p.w, "Invalid choice! Please enter 'yes' or 'no'.")
	}
}

// Choice asks 'question' until the user answers one of 'choices'.
// The answer is returned in lower case.
func (p *Prompter) Choice(question string, choices ...string) (string, error) {
	for {
		line, err := p.readLine(question)
		if err != nil {
			return "", err
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		if slices.Contains(choices, answer) {
			return answer, nil
		}
		quoted := make([]string, len(choices))
		for i, c := range choices {
			quoted[i] = "'" + c + "'"
		}
		fmt.Fprintf(p.w, "Invalid choice! Please enter %s.\n", strings.Join(quoted, " or "))
	}
}
