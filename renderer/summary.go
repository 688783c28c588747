package renderer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/etnz/folio"
)

const (
	tableWidth   = 60
	listingWidth = 50
	rowFormat    = "%-10s %-12s %-12s %-12s\n"
)

func rule(w io.Writer, c string, width int) {
	fmt.Fprintln(w, strings.Repeat(c, width))
}

// table prints the column header, one row per holding and the closing rule.
// Console and text reports share it so both files line up the same way.
func table(w io.Writer, v *Valuation) {
	fmt.Fprintf(w, rowFormat, "Stock", "Quantity", "Price", "Total Value")
	rule(w, "-", tableWidth)
	for _, l := range v.Lines {
		fmt.Fprintf(w, rowFormat, l.Ticker, l.Quantity, l.Price, l.Value)
	}
	rule(w, "-", tableWidth)
}

// Summary prints the console summary of a valuation.
func Summary(w io.Writer, v *folio.Valuation) {
	r := NewValuation(v, time.Time{})
	fmt.Fprintln(w)
	rule(w, "=", tableWidth)
	fmt.Fprintln(w, "PORTFOLIO SUMMARY")
	rule(w, "=", tableWidth)
	table(w, r)
	fmt.Fprintf(w, "%-34s %s\n", "TOTAL INVESTMENT VALUE:", r.Total)
	rule(w, "=", tableWidth)
	fmt.Fprintln(w)
}

// Text writes the tabular text export of a valuation generated at 'generated'.
func Text(w io.Writer, v *folio.Valuation, generated time.Time) error {
	r := NewValuation(v, generated)
	// buffer everything to report a single write error
	var b strings.Builder
	rule(&b, "=", tableWidth)
	fmt.Fprintln(&b, "STOCK PORTFOLIO TRACKER")
	fmt.Fprintf(&b, "Generated: %s\n", r.Generated)
	rule(&b, "=", tableWidth)
	fmt.Fprintln(&b)
	table(&b, r)
	fmt.Fprintf(&b, "TOTAL INVESTMENT VALUE: %s\n", r.Total)
	rule(&b, "=", tableWidth)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("cannot write text report: %w", err)
	}
	return nil
}

// Catalog prints the list of available tickers and their prices.
func Catalog(w io.Writer, cat *folio.Catalog) {
	fmt.Fprintln(w)
	rule(w, "=", listingWidth)
	fmt.Fprintln(w, "AVAILABLE STOCKS:")
	rule(w, "=", listingWidth)
	for _, e := range cat.All() {
		fmt.Fprintf(w, "%s: %s\n", e.Ticker, e.Price.Plain())
	}
	rule(w, "=", listingWidth)
	fmt.Fprintln(w)
}
