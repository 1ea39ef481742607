package fundwatch

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount in a single currency. The value is kept
// as an exact decimal; conversion to float happens only at the computation
// boundary.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from a float amount. It is a convenience for flag values
// and tests; parsed amounts should use NewMoney with an exact decimal.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// NewMoney builds a Money from an exact decimal amount.
func NewMoney(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

func (m Money) Currency() string     { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) IsZero() bool         { return m.value.IsZero() }
func (m Money) IsPositive() bool     { return m.value.IsPositive() }
func (m Money) IsNegative() bool     { return m.value.IsNegative() }
func (m Money) Add(n Money) Money    { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money    { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// MulFloat scales the amount by a growth ratio. The ratio comes from float
// computations, so exactness is already lost; the result is still carried as
// a decimal for consistent formatting.
func (m Money) MulFloat(ratio float64) Money {
	return Money{value: m.value.Mul(decimal.NewFromFloat(ratio)), cur: m.cur}
}

// AsFloat returns the amount as a float64 for use in computations.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// String formats the amount with its currency symbol and fraction digits.
func (m Money) String() string {
	c := *money.New(0, m.cur).Currency()
	dec := m.value.Shift(int32(c.Fraction))
	return c.Formatter().Format(dec.IntPart())
}

// SignedString renders the amount with an explicit sign, and zero as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
