package folio

import (
	"errors"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	cat := DefaultCatalog()
	want := []string{"AAPL", "TSLA", "GOOGL", "MSFT", "AMZN", "META", "NVIDIA"}
	all := cat.All()
	if len(all) != len(want) {
		t.Fatalf("DefaultCatalog() has %d entries, want %d", len(all), len(want))
	}
	for i, e := range all {
		if e.Ticker != want[i] {
			t.Errorf("entry #%d = %q, want %q", i, e.Ticker, want[i])
		}
		if e.Price.Currency() != "USD" {
			t.Errorf("%s price currency = %q, want USD", e.Ticker, e.Price.Currency())
		}
	}
}

func TestCatalogLookup(t *testing.T) {
	cat := DefaultCatalog()

	testCases := []struct {
		ticker string
		want   Money
		found  bool
	}{
		{"AAPL", USD(180), true},
		{"aapl", USD(180), true},
		{" Nvidia ", USD(875), true},
		{"IBM", Money{}, false},
		{"", Money{}, false},
	}
	for _, tc := range testCases {
		got, ok := cat.Lookup(tc.ticker)
		if ok != tc.found {
			t.Errorf("Lookup(%q) found = %v, want %v", tc.ticker, ok, tc.found)
			continue
		}
		if ok && !got.Equal(tc.want) {
			t.Errorf("Lookup(%q) = %v, want %v", tc.ticker, got, tc.want)
		}
	}
}

func TestCatalogAllIsACopy(t *testing.T) {
	cat := DefaultCatalog()
	all := cat.All()
	all[0].Ticker = "XXX"
	if cat.Has("XXX") || cat.All()[0].Ticker != "AAPL" {
		t.Error("modifying All() result changed the catalog")
	}
}

func TestNewCatalogErrors(t *testing.T) {
	testCases := []struct {
		name    string
		entries []CatalogEntry
	}{
		{"empty ticker", []CatalogEntry{{"", USD(1)}}},
		{"blank in ticker", []CatalogEntry{{"A B", USD(1)}}},
		{"duplicate", []CatalogEntry{{"AAPL", USD(1)}, {"aapl", USD(2)}}},
		{"zero price", []CatalogEntry{{"AAPL", USD(0)}}},
		{"negative price", []CatalogEntry{{"AAPL", USD(-1)}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCatalog("USD", tc.entries...); err == nil {
				t.Errorf("NewCatalog(%v) should fail", tc.entries)
			}
		})
	}
}

func TestNewCatalogNormalizes(t *testing.T) {
	cat, err := NewCatalog("eur", CatalogEntry{"air", M(120.5, "")})
	if err != nil {
		t.Fatalf("NewCatalog() error: %v", err)
	}
	price, ok := cat.Lookup("AIR")
	if !ok {
		t.Fatal("AIR not found")
	}
	if !price.Equal(EUR(120.5)) {
		t.Errorf("AIR price = %v, want %v", price, EUR(120.5))
	}
}

func TestValueUnknownTicker(t *testing.T) {
	p := NewPortfolio()
	p.Set("IBM", Q(1))
	_, err := Value(p, DefaultCatalog())
	if !errors.Is(err, ErrUnknownTicker) {
		t.Errorf("Value() error = %v, want %v", err, ErrUnknownTicker)
	}
}
