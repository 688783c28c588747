package folio

import "testing"

func TestValue(t *testing.T) {
	cat, err := NewCatalog("USD", CatalogEntry{"AAPL", USD(180)}, CatalogEntry{"TSLA", USD(250)})
	if err != nil {
		t.Fatal(err)
	}
	p := NewPortfolio()
	p.Set("AAPL", Q(10))
	p.Set("TSLA", Q(2))

	v, err := Value(p, cat)
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if !v.Total.Equal(USD(2300)) {
		t.Errorf("Total = %v, want %v", v.Total, USD(2300))
	}

	want := []Line{
		{"AAPL", Q(10), USD(180), USD(1800)},
		{"TSLA", Q(2), USD(250), USD(500)},
	}
	if len(v.Lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(v.Lines), len(want))
	}
	for i, l := range v.Lines {
		w := want[i]
		if l.Ticker != w.Ticker || !l.Quantity.Equal(w.Quantity) || !l.Price.Equal(w.Price) || !l.Value.Equal(w.Value) {
			t.Errorf("line #%d = %v, want %v", i, l, w)
		}
	}
}

func TestValueFractional(t *testing.T) {
	p := NewPortfolio()
	p.Set("NVIDIA", Q(0.1))
	p.Set("AMZN", Q(0.3))
	v, err := Value(p, DefaultCatalog())
	if err != nil {
		t.Fatal(err)
	}
	// 87.5 + 51, exact with decimals
	if !v.Total.Equal(USD(138.5)) {
		t.Errorf("Total = %v, want %v", v.Total.Decimal(), 138.5)
	}
	if v.Lines[0].Ticker != "NVIDIA" {
		t.Errorf("first line = %q, want NVIDIA", v.Lines[0].Ticker)
	}
}

func TestValueEmpty(t *testing.T) {
	v, err := Value(NewPortfolio(), DefaultCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Lines) != 0 || !v.Total.IsZero() {
		t.Errorf("Value(empty) = %v", v)
	}
}

func TestValueLargestQuantity(t *testing.T) {
	p := NewPortfolio()
	e := Classify("AAPL 999999999999999", DefaultCatalog(), DefaultDoneKeyword)
	if e.Kind != EntryAdd {
		t.Fatalf("Classify() = %v, %v, want an accepted entry", e.Kind, e.Err)
	}
	p.Set(e.Ticker, e.Quantity)
	v, err := Value(p, DefaultCatalog())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := v.Total.String(), "$179,999,999,999,999,820.00"; got != want {
		t.Errorf("Total = %q, want %q", got, want)
	}
	if got, want := v.Lines[0].Value.Plain(), "$179999999999999820.00"; got != want {
		t.Errorf("line value = %q, want %q", got, want)
	}
}
