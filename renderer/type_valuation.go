package renderer

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/etnz/folio"
)

// Valuation is a struct to represent a portfolio valuation ready to be rendered.
// Numbers are already formatted the way every report prints them.
type Valuation struct {
	// Generated is the time the report was generated, "YYYY-MM-DD HH:MM:SS".
	Generated string `json:"generated,omitempty"`
	// Currency of every amount.
	Currency string `json:"currency"`
	// Lines are the holdings, in portfolio order.
	Lines []ValuationLine `json:"lines"`
	// Total is the total value with thousands separators.
	Total string `json:"total"`
}

// ValuationLine represents a single valued holding.
type ValuationLine struct {
	Ticker   string `json:"ticker"`
	Quantity string `json:"quantity"` // two decimals
	Price    string `json:"price"`    // currency symbol, two decimals
	Value    string `json:"value"`    // currency symbol, two decimals
}

// NewValuation creates a new Valuation struct from a portfolio valuation.
func NewValuation(v *folio.Valuation, generated time.Time) *Valuation {
	r := &Valuation{
		Currency: v.Currency,
		Lines:    make([]ValuationLine, 0, len(v.Lines)),
		Total:    v.Total.String(),
	}
	if !generated.IsZero() {
		r.Generated = generated.Format(time.DateTime)
	}
	for _, l := range v.Lines {
		r.Lines = append(r.Lines, ValuationLine{
			Ticker:   l.Ticker,
			Quantity: l.Quantity.Fixed(2),
			Price:    l.Price.Plain(),
			Value:    l.Value.Plain(),
		})
	}
	return r
}

// valuationMarkdownTemplate is the template for rendering a Valuation in Markdown.
const valuationMarkdownTemplate = `# Portfolio Summary

{{- if .Generated }}

Generated on {{ .Generated }}
{{- end }}

Total Investment Value: **{{ .Total }}**

| Stock | Quantity | Price | Total Value |
|:---|---:|---:|---:|
{{- range .Lines }}
| {{ .Ticker }} | {{ .Quantity }} | {{ .Price }} | {{ .Value }} |
{{- end }}
| **Total** | | | **{{ .Total }}** |
`

// Markdown renders the valuation as a markdown document.
func Markdown(v *Valuation) string {
	tmpl := template.Must(template.New("valuation").Parse(valuationMarkdownTemplate))
	var b strings.Builder
	if err := tmpl.Execute(&b, v); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return b.String()
}
