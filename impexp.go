package folio

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// this file contains functions to handle the catalog import/export format.
// It should remain human readable, and easy to extract from larger documents.

// DefaultCatalogPath is the JSONPath used to find the price table in an imported document.
const DefaultCatalogPath = "$.prices"

// ImportCatalog reads a JSON document from 'r' and builds a catalog from the
// price table selected by the JSONPath expression 'path'.
//
// The selected value is either a list of objects with a 'ticker' and a 'price'
// property, kept in order, or a single object whose properties are tickers and
// values are prices, sorted by ticker.
//
// If the document has a top level 'currency' property it overrides 'currency'.
func ImportCatalog(r io.Reader, path, currency string) (*Catalog, error) {
	if path == "" {
		path = DefaultCatalogPath
	}
	var doc any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse catalog document: %w", err)
	}
	if obj, ok := doc.(map[string]any); ok {
		if c, ok := obj["currency"].(string); ok && c != "" {
			currency = c
		}
	}

	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot select %q in catalog document: %w", path, err)
	}

	var entries []CatalogEntry
	switch v := jval.(type) {
	case []any:
		for i, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("catalog item #%d is not an object: %v", i, item)
			}
			ticker, _ := obj["ticker"].(string)
			price, err := jsonDecimal(obj["price"])
			if err != nil {
				return nil, fmt.Errorf("catalog item #%d (%q): %w", i, ticker, err)
			}
			entries = append(entries, CatalogEntry{Ticker: ticker, Price: M(price, currency)})
		}
	case map[string]any:
		tickers := make([]string, 0, len(v))
		for t := range v {
			tickers = append(tickers, t)
		}
		slices.Sort(tickers)
		for _, t := range tickers {
			price, err := jsonDecimal(v[t])
			if err != nil {
				return nil, fmt.Errorf("catalog item %q: %w", t, err)
			}
			entries = append(entries, CatalogEntry{Ticker: t, Price: M(price, currency)})
		}
	default:
		return nil, fmt.Errorf("%q does not select a list or an object: %v", path, jval)
	}
	return NewCatalog(currency, entries...)
}

// jsonDecimal converts a decoded json value into a decimal, accepting numbers and numeric strings.
func jsonDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case json.Number:
		return decimal.NewFromString(x.String())
	case float64:
		return decimal.NewFromFloat(x), nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(x))
	default:
		return decimal.Decimal{}, fmt.Errorf("invalid price %v", v)
	}
}

// ExportCatalog writes the catalog to 'w' in the import format, with the price
// table under the default path.
func ExportCatalog(w io.Writer, c *Catalog) error {
	type jentry struct {
		Ticker string          `json:"ticker"`
		Price  decimal.Decimal `json:"price"`
	}
	type jcatalog struct {
		Currency string   `json:"currency"`
		Prices   []jentry `json:"prices"`
	}
	doc := jcatalog{Currency: c.Currency(), Prices: make([]jentry, 0, c.Len())}
	for _, e := range c.All() {
		doc.Prices = append(doc.Prices, jentry{Ticker: e.Ticker, Price: e.Price.Decimal()})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("cannot write catalog: %w", err)
	}
	return nil
}
