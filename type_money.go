package folio

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// minor units range formatted by go-money, which negates negative amounts.
var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(-math.MaxInt64)
)

// String returns the money with its currency symbol and thousands separators,
// like "$2,300.00".
func (m Money) String() string {
	cur := m.currency()
	return m.format(cur, cur.Thousand)
}

// Plain returns the money with its currency symbol but without thousands
// separators, like "$1800.00".
func (m Money) Plain() string {
	return m.format(m.currency(), "")
}

// format renders the value rounded to the currency fraction.
//
// Amounts that do not fit in int64 minor units are formatted from the
// decimal with the same rules as go-money.
func (m Money) format(cur money.Currency, thousand string) string {
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	if minor.LessThanOrEqual(maxMinor) && minor.GreaterThanOrEqual(minMinor) {
		f := money.NewFormatter(cur.Fraction, cur.Decimal, thousand, cur.Grapheme, cur.Template)
		return f.Format(minor.IntPart())
	}

	digits := minor.Abs().String()
	if len(digits) <= cur.Fraction {
		digits = strings.Repeat("0", cur.Fraction-len(digits)+1) + digits
	}
	whole, fraction := digits[:len(digits)-cur.Fraction], digits[len(digits)-cur.Fraction:]
	if thousand != "" {
		for i := len(whole) - 3; i > 0; i -= 3 {
			whole = whole[:i] + thousand + whole[i:]
		}
	}
	s := whole
	if cur.Fraction > 0 {
		s += cur.Decimal + fraction
	}
	s = strings.Replace(cur.Template, "1", s, 1)
	s = strings.Replace(s, "$", cur.Grapheme, 1)
	if minor.IsNegative() {
		s = "-" + s
	}
	return s
}

// Simple wrapper around decimal.Decimal

func (m Money) Currency() string         { return m.cur }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) Mul(n Quantity) Money     { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}
