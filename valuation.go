package folio

import "fmt"

// Line is the valuation of a single holding.
type Line struct {
	Ticker   string
	Quantity Quantity
	Price    Money
	Value    Money // Quantity × Price
}

// Valuation is the value of a portfolio, holding by holding.
type Valuation struct {
	Currency string
	Lines    []Line // in portfolio order
	Total    Money
}

// Value computes the valuation of 'p' using the prices in 'cat'.
//
// Every ticker in 'p' must be in 'cat': a missing price means the portfolio
// was not built against this catalog and is reported as an error.
func Value(p *Portfolio, cat *Catalog) (*Valuation, error) {
	v := &Valuation{
		Currency: cat.Currency(),
		Lines:    make([]Line, 0, p.Len()),
		Total:    M(0, cat.Currency()),
	}
	for ticker, q := range p.All() {
		price, ok := cat.Lookup(ticker)
		if !ok {
			return nil, fmt.Errorf("cannot value %q: %w", ticker, ErrUnknownTicker)
		}
		value := price.Mul(q)
		v.Lines = append(v.Lines, Line{Ticker: ticker, Quantity: q, Price: price, Value: value})
		v.Total = v.Total.Add(value)
	}
	return v, nil
}
