package planner

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// displayCurrency is only used to format amounts for humans, the ledger has no currency handling.
const displayCurrency = money.USD

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
}

func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// M creates a Money from a numeric value.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// bounds of the amounts, in minor units, that the display formatter can hold.
var (
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
)

// String returns the display representation of the money value, e.g. "$2,500.00".
//
// Amounts too large for the formatter fall back to Plain.
func (m Money) String() string {
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, displayCurrency).Currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	if dec.LessThan(minMinorUnits) || dec.GreaterThan(maxMinorUnits) {
		return m.Plain()
	}
	return cur.Formatter().Format(dec.IntPart())
}

// Plain returns the value rounded to two decimals and prefixed with "$", e.g. "$-40.00".
//
// This is the representation used in the ledger file.
func (m Money) Plain() string { return "$" + m.value.StringFixed(2) }

func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money               { return Money{value: m.value.Abs()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// Round returns the money rounded to two decimals.
func (m Money) Round() Money { return Money{value: m.value.Round(2)} }
