package renderer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/etnz/folio"
)

var csvHeader = []string{"Stock", "Quantity", "Price", "Total Value"}

const csvTotalLabel = "Total Investment Value"

// CSV writes the comma separated export of a valuation.
//
// Rows are the header, one row per holding, an empty row and the total.
func CSV(w io.Writer, v *folio.Valuation) error {
	r := NewValuation(v, time.Time{})
	cw := csv.NewWriter(w)
	records := make([][]string, 0, len(r.Lines)+3)
	records = append(records, csvHeader)
	for _, l := range r.Lines {
		records = append(records, []string{l.Ticker, l.Quantity, l.Price, l.Value})
	}
	records = append(records, []string{})
	records = append(records, []string{csvTotalLabel, r.Total})
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("cannot write csv report: %w", err)
	}
	return nil
}

// ReadCSV parses a comma separated export back into its lines and total.
func ReadCSV(r io.Reader) (*Valuation, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read csv report: %w", err)
	}
	if len(records) == 0 || !slices.Equal(records[0], csvHeader) {
		return nil, errors.New("cannot read csv report: missing header")
	}

	v := &Valuation{}
	for i, rec := range records[1:] {
		if len(rec) == 2 && rec[0] == csvTotalLabel {
			v.Total = rec[1]
			return v, nil
		}
		if len(rec) != len(csvHeader) {
			return nil, fmt.Errorf("cannot read csv report: row %d has %d fields", i+2, len(rec))
		}
		v.Lines = append(v.Lines, ValuationLine{Ticker: rec[0], Quantity: rec[1], Price: rec[2], Value: rec[3]})
	}
	return nil, errors.New("cannot read csv report: missing total")
}
