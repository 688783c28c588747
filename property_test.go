package folio

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// propertyLines is a mix of valid, invalid and terminating input lines.
var propertyLines = []string{
	"AAPL 10",
	"aapl 3",
	"TSLA 2",
	"tsla 0.5",
	"MSFT 1",
	"GOOGL 7.25",
	"IBM 4",
	"AAPL",
	"AAPL x",
	"TSLA -2",
	"TSLA 0",
	"a b c",
	"",
	"done",
}

func replay(indexes []int) (*Collector, []Outcome) {
	cat := DefaultCatalog()
	c := NewCollector()
	var outcomes []Outcome
	for _, i := range indexes {
		outcomes = append(outcomes, c.Apply(Classify(propertyLines[i], cat, DefaultDoneKeyword)))
	}
	return c, outcomes
}

func TestCollectorProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	lines := gen.SliceOf(gen.IntRange(0, len(propertyLines)-1))

	properties.Property("quantities are always strictly positive", prop.ForAll(
		func(indexes []int) bool {
			c, _ := replay(indexes)
			for _, q := range c.Portfolio().All() {
				if !q.IsPositive() {
					return false
				}
			}
			return true
		},
		lines,
	))

	properties.Property("only catalog tickers are held", prop.ForAll(
		func(indexes []int) bool {
			c, _ := replay(indexes)
			cat := DefaultCatalog()
			for _, ticker := range c.Portfolio().Tickers() {
				if !cat.Has(ticker) {
					return false
				}
			}
			return true
		},
		lines,
	))

	properties.Property("done never succeeds on an empty portfolio", prop.ForAll(
		func(indexes []int) bool {
			c, _ := replay(indexes)
			return c.State() != Done || !c.Portfolio().IsEmpty()
		},
		lines,
	))

	properties.Property("rejected lines do not change the portfolio", prop.ForAll(
		func(indexes []int) bool {
			cat := DefaultCatalog()
			c := NewCollector()
			for _, i := range indexes {
				before := c.Portfolio().Clone()
				out := c.Apply(Classify(propertyLines[i], cat, DefaultDoneKeyword))
				if out.Err == nil {
					continue
				}
				after := c.Portfolio()
				if after.Len() != before.Len() {
					return false
				}
				for ticker, q := range before.All() {
					if got, _ := after.Get(ticker); !got.Equal(q) {
						return false
					}
				}
			}
			return true
		},
		lines,
	))

	properties.Property("nothing is accepted after done", prop.ForAll(
		func(indexes []int) bool {
			c, outcomes := replay(indexes)
			if c.State() != Done {
				return true
			}
			seenDone := false
			for _, o := range outcomes {
				if seenDone && !errors.Is(o.Err, ErrCollectorDone) {
					return false
				}
				if o.Err == nil && o.Entry.Kind == EntryDone {
					seenDone = true
				}
			}
			return true
		},
		lines,
	))

	properties.Property("total is the sum of line values", prop.ForAll(
		func(indexes []int) bool {
			c, _ := replay(indexes)
			v, err := Value(c.Portfolio(), DefaultCatalog())
			if err != nil {
				return false
			}
			sum := M(0, v.Currency)
			for _, l := range v.Lines {
				if !l.Value.Equal(l.Price.Mul(l.Quantity)) {
					return false
				}
				sum = sum.Add(l.Value)
			}
			return sum.Equal(v.Total)
		},
		lines,
	))

	properties.TestingRun(t)
}
