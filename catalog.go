package folio

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTicker is returned when a ticker is not part of the catalog.
var ErrUnknownTicker = errors.New("unknown ticker")

// CatalogEntry is a ticker and its unit price.
type CatalogEntry struct {
	Ticker string
	Price  Money
}

// Catalog is an immutable table of unit prices indexed by ticker.
//
// Tickers are upper case, lookups are case-insensitive.
type Catalog struct {
	currency string
	entries  []CatalogEntry
	index    map[string]int
}

// NewCatalog returns a catalog of the given entries, in that order.
//
// All prices are expressed in 'currency'. Tickers must be unique and prices
// strictly positive.
func NewCatalog(currency string, entries ...CatalogEntry) (*Catalog, error) {
	c := &Catalog{
		currency: strings.ToUpper(currency),
		entries:  make([]CatalogEntry, 0, len(entries)),
		index:    make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		ticker := strings.ToUpper(strings.TrimSpace(e.Ticker))
		if ticker == "" {
			return nil, fmt.Errorf("catalog entry without ticker")
		}
		if strings.ContainsAny(ticker, " \t\n") {
			return nil, fmt.Errorf("invalid ticker %q: must be a single word", ticker)
		}
		if _, exists := c.index[ticker]; exists {
			return nil, fmt.Errorf("duplicate ticker %q in catalog", ticker)
		}
		if !e.Price.IsPositive() {
			return nil, fmt.Errorf("invalid price %v for %q: must be positive", e.Price.Decimal(), ticker)
		}
		c.index[ticker] = len(c.entries)
		c.entries = append(c.entries, CatalogEntry{Ticker: ticker, Price: M(e.Price.Decimal(), c.currency)})
	}
	return c, nil
}

// DefaultCatalog returns the built-in catalog of fixed prices in USD.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog("USD",
		CatalogEntry{"AAPL", M(180, "USD")},
		CatalogEntry{"TSLA", M(250, "USD")},
		CatalogEntry{"GOOGL", M(140, "USD")},
		CatalogEntry{"MSFT", M(380, "USD")},
		CatalogEntry{"AMZN", M(170, "USD")},
		CatalogEntry{"META", M(320, "USD")},
		CatalogEntry{"NVIDIA", M(875, "USD")},
	)
	if err != nil {
		panic(err) // static data
	}
	return c
}

// Currency returns the currency of all the prices in the catalog.
func (c *Catalog) Currency() string { return c.currency }

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Lookup returns the unit price of 'ticker', or false if the ticker is not
// in the catalog.
func (c *Catalog) Lookup(ticker string) (Money, bool) {
	i, ok := c.index[strings.ToUpper(strings.TrimSpace(ticker))]
	if !ok {
		return Money{}, false
	}
	return c.entries[i].Price, true
}

// Has reports whether 'ticker' is in the catalog.
func (c *Catalog) Has(ticker string) bool {
	_, ok := c.Lookup(ticker)
	return ok
}

// All returns a copy of the catalog entries in declaration order.
func (c *Catalog) All() []CatalogEntry {
	out := make([]CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}
