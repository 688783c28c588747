package folio

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultDoneKeyword is the word that ends the portfolio input.
const DefaultDoneKeyword = "done"

// Reasons an input line is rejected.
var (
	ErrInvalidFormat       = errors.New("invalid format")
	ErrTickerNotFound      = errors.New("ticker not found")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrNonPositiveQuantity = errors.New("quantity must be positive")
	ErrEmptyPortfolio      = errors.New("portfolio is empty")
)

// EntryKind is a typed string for identifying classified input lines.
type EntryKind string

const (
	EntryDone     EntryKind = "done"
	EntryAdd      EntryKind = "add"
	EntryRejected EntryKind = "rejected"
)

// Entry is a single classified line of user input.
type Entry struct {
	Kind     EntryKind
	Ticker   string   // upper case, set for EntryAdd and for ErrTickerNotFound.
	Quantity Quantity // set for EntryAdd.
	Err      error    // set for EntryRejected.
}

// Classify turns one line of user input into an Entry.
//
// The comparison is case-insensitive. A line equal to 'doneKeyword' is a
// termination request, otherwise the line must be exactly a ticker from 'cat'
// and a strictly positive quantity, separated by blanks.
func Classify(line string, cat *Catalog, doneKeyword string) Entry {
	line = strings.ToUpper(strings.TrimSpace(line))
	if line == strings.ToUpper(strings.TrimSpace(doneKeyword)) {
		return Entry{Kind: EntryDone}
	}

	parts := strings.Fields(line)
	if len(parts) != 2 {
		return rejected("", ErrInvalidFormat)
	}
	ticker, qty := parts[0], parts[1]

	if !cat.Has(ticker) {
		return rejected(ticker, ErrTickerNotFound)
	}

	q, err := ParseQuantity(qty)
	if err != nil {
		return rejected(ticker, fmt.Errorf("%w: %w", ErrInvalidQuantity, err))
	}
	if !q.IsPositive() {
		return rejected(ticker, ErrNonPositiveQuantity)
	}
	return Entry{Kind: EntryAdd, Ticker: ticker, Quantity: q}
}

func rejected(ticker string, err error) Entry {
	return Entry{Kind: EntryRejected, Ticker: ticker, Err: err}
}

// CollectorState is the state of a Collector.
type CollectorState string

const (
	Collecting CollectorState = "collecting"
	Done       CollectorState = "done"
)

// ErrCollectorDone is returned when an entry is applied to a finished collector.
var ErrCollectorDone = errors.New("portfolio input already completed")

// Outcome is the result of applying an Entry to a Collector.
type Outcome struct {
	Entry Entry
	Err   error // nil when the entry was accepted or ended the input.
}

// Collector accumulates classified entries into a Portfolio.
//
// It starts Collecting and moves to Done on a termination request, but only
// once the portfolio holds at least one ticker.
type Collector struct {
	state     CollectorState
	portfolio *Portfolio
}

// NewCollector returns a collector with an empty portfolio.
func NewCollector() *Collector {
	return &Collector{state: Collecting, portfolio: NewPortfolio()}
}

func (c *Collector) State() CollectorState { return c.state }

// Portfolio returns the portfolio collected so far.
//
// The returned value is shared with the collector until it is Done.
func (c *Collector) Portfolio() *Portfolio { return c.portfolio }

// Apply processes a single entry.
func (c *Collector) Apply(e Entry) Outcome {
	if c.state == Done {
		return Outcome{Entry: e, Err: ErrCollectorDone}
	}
	switch e.Kind {
	case EntryDone:
		if c.portfolio.IsEmpty() {
			return Outcome{Entry: e, Err: ErrEmptyPortfolio}
		}
		c.state = Done
	case EntryAdd:
		c.portfolio.Set(e.Ticker, e.Quantity)
	case EntryRejected:
		return Outcome{Entry: e, Err: e.Err}
	default:
		return Outcome{Entry: e, Err: fmt.Errorf("unknown entry kind %q", e.Kind)}
	}
	return Outcome{Entry: e}
}
