package folio

import "iter"

// Portfolio maps tickers to quantities, remembering the order in which
// tickers were first added.
//
// Setting a ticker again replaces its quantity but keeps its position.
type Portfolio struct {
	tickers    []string
	quantities map[string]Quantity
}

// NewPortfolio returns an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{quantities: make(map[string]Quantity)}
}

// Set sets the quantity held for 'ticker'.
func (p *Portfolio) Set(ticker string, q Quantity) {
	if _, exists := p.quantities[ticker]; !exists {
		p.tickers = append(p.tickers, ticker)
	}
	p.quantities[ticker] = q
}

// Get returns the quantity held for 'ticker'.
func (p *Portfolio) Get(ticker string) (Quantity, bool) {
	q, ok := p.quantities[ticker]
	return q, ok
}

// Len returns the number of tickers held.
func (p *Portfolio) Len() int { return len(p.tickers) }

// IsEmpty reports whether the portfolio holds nothing.
func (p *Portfolio) IsEmpty() bool { return len(p.tickers) == 0 }

// Tickers returns the tickers in insertion order.
func (p *Portfolio) Tickers() []string {
	out := make([]string, len(p.tickers))
	copy(out, p.tickers)
	return out
}

// All iterates over tickers and quantities in insertion order.
func (p *Portfolio) All() iter.Seq2[string, Quantity] {
	return func(yield func(string, Quantity) bool) {
		for _, t := range p.tickers {
			if !yield(t, p.quantities[t]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the portfolio.
func (p *Portfolio) Clone() *Portfolio {
	c := NewPortfolio()
	for t, q := range p.All() {
		c.Set(t, q)
	}
	return c
}
