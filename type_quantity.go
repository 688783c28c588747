package folio

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is a number of shares. Fractional shares are allowed.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// Bounds of a parsed quantity: fewer than 1e15 shares, at most 9 decimals.
const (
	maxQuantityDigits = 15
	maxQuantityScale  = 9
)

// ParseQuantity parses a quantity typed by a user, like "10", "2.5" or "1e3".
//
// Quantities of 1e15 or more, or with more than 9 decimals, are rejected.
func ParseQuantity(s string) (Quantity, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Quantity{}, fmt.Errorf("cannot parse quantity %q: %w", s, err)
	}
	// bounds are checked on the coefficient and exponent, rescaling a huge exponent never ends
	if d.Coefficient().Sign() == 0 {
		return Quantity{}, nil
	}
	exp := int64(d.Exponent())
	digits := int64(len(new(big.Int).Abs(d.Coefficient()).String()))
	if digits+exp > maxQuantityDigits {
		return Quantity{}, fmt.Errorf("quantity %q is too large", s)
	}
	if exp < -maxQuantityScale {
		return Quantity{}, fmt.Errorf("quantity %q has more than %d decimals", s, maxQuantityScale)
	}
	return Quantity{value: d}, nil
}

func (q Quantity) Equal(p Quantity) bool { return q.value.Equal(p.value) }
func (q Quantity) IsPositive() bool      { return q.value.IsPositive() }
func (q Quantity) String() string        { return q.value.String() }

// Fixed returns the quantity with exactly 'places' decimals.
func (q Quantity) Fixed(places int32) string { return q.value.StringFixed(places) }
