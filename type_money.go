package analytics

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value, such as a portfolio value or an asset price.
type Money struct {
	value   decimal.Decimal // as major unit value
	cur     string
	defined bool
}

// M returns the money value in the given currency. NaN and infinite values
// are kept as undefined money.
func M(value float64, currency string) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{cur: currency}
	}
	return Money{value: decimal.NewFromFloat(value), cur: currency, defined: true}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	if !m.defined {
		return "N/A"
	}
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string { return m.cur }
func (m Money) IsDefined() bool  { return m.defined }
func (m Money) IsZero() bool     { return m.defined && m.value.IsZero() }
func (m Money) Equal(n Money) bool {
	return m.defined == n.defined && m.value.Equal(n.value) && m.cur == n.cur
}

// AsFloat returns the value as a float, NaN when undefined.
func (m Money) AsFloat() float64 {
	if !m.defined {
		return math.NaN()
	}
	return m.value.InexactFloat64()
}
