package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrDivisionByZero is returned when dividing a Money value by zero.
var ErrDivisionByZero = errors.New("money: division by zero")

// Money is a monetary value stored as an integer count of minor currency
// units (cents). Arithmetic and comparisons work on the integer
// representation so float rounding can never leak into balances.
// Money is immutable; every operation returns a new value.
type Money struct {
	cents int64
}

// NewMoneyFromCents builds a Money from a value already in minor units.
func NewMoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

// NewMoneyFromDecimal converts a decimal amount to minor units,
// rounding half-up at two fractional digits. This is the only place a
// decimal value is allowed to become a balance or transfer amount.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{cents: roundHalfUp(d.Shift(2))}
}

// roundHalfUp rounds to an integer with ties going toward positive
// infinity, so 0.5 becomes 1 and -0.5 becomes 0. decimal's own Round
// sends ties away from zero, which differs on negative values.
func roundHalfUp(d decimal.Decimal) int64 {
	return d.Add(decimal.New(5, -1)).Floor().IntPart()
}

// NewMoneyFromString parses a decimal string ("100.50") into Money.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("money: invalid amount %q: %w", s, err)
	}
	return NewMoneyFromDecimal(d), nil
}

// Cents returns the raw minor-unit value.
func (m Money) Cents() int64 { return m.cents }

// Decimal returns the amount as a two-digit decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Subtract(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// MulScalar multiplies the amount by an integer scalar.
func (m Money) MulScalar(n int64) Money {
	return Money{cents: m.cents * n}
}

// DivScalar divides the amount by an integer scalar, rounding half-up
// on the minor-unit result.
func (m Money) DivScalar(n int64) (Money, error) {
	if n == 0 {
		return Money{}, ErrDivisionByZero
	}
	d := decimal.New(m.cents, 0).Div(decimal.New(n, 0))
	return Money{cents: roundHalfUp(d)}, nil
}

func (m Money) GreaterThan(other Money) bool        { return m.cents > other.cents }
func (m Money) GreaterThanOrEqual(other Money) bool { return m.cents >= other.cents }
func (m Money) LessThan(other Money) bool           { return m.cents < other.cents }
func (m Money) LessThanOrEqual(other Money) bool    { return m.cents <= other.cents }
func (m Money) Equal(other Money) bool              { return m.cents == other.cents }

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool { return m.cents > 0 }

// Format renders the amount with the given number of decimals and
// separators, e.g. Format(2, ".", ",") -> "1,234.50".
func (m Money) Format(decimals int, decPoint, thousandsSep string) string {
	d := m.Decimal().StringFixed(int32(decimals))

	neg := strings.HasPrefix(d, "-")
	d = strings.TrimPrefix(d, "-")

	intPart := d
	fracPart := ""
	if i := strings.Index(d, "."); i >= 0 {
		intPart, fracPart = d[:i], d[i+1:]
	}

	var sb strings.Builder
	if neg {
		sb.WriteString("-")
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteString(thousandsSep)
		}
		sb.WriteRune(r)
	}
	if fracPart != "" {
		sb.WriteString(decPoint)
		sb.WriteString(fracPart)
	}
	return sb.String()
}

// String renders the amount as a plain two-digit decimal.
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}
