package marina

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// marina fees are all billed in the same currency.
const currency = "USD"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
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
	default:
		panic("unsupported type")
	}
}

// Money represents a dollar amount. Arithmetic stays exact; rounding only
// happens when formatting.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// String returns the amount formatted with the currency symbol, e.g. "$375.00".
func (m Money) String() string {
	cur := money.GetCurrency(currency)
	dec := m.value.Shift(int32(cur.Fraction))
	return money.New(dec.Round(0).IntPart(), currency).Display()
}

// Fixed returns the amount with two decimal places and no symbol, as written
// in the fleet file.
func (m Money) Fixed() string { return m.value.StringFixed(2) }

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(n Quantity) Money            { return Money{value: m.value.Mul(n.value)} }

// Quantity is a dimensionless amount, used for vessel lengths in rate
// multiplications.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Equal(p Quantity) bool { return q.value.Equal(p.value) }
func (q Quantity) IsZero() bool          { return q.value.IsZero() }
func (q Quantity) String() string        { return q.value.String() }
