package kernel

import (
	"foodcourt/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for monetary amounts with two-decimal fixed-point
// precision. All monetary arithmetic in the engine goes through Money so that
// breakdown components never accumulate binary floating-point drift.
//
// The zero value is a valid amount of zero. Money is immutable; every
// operation returns a new value rounded to two decimal places.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount, rounded to two decimals.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount.Round(2)}
}

// NewMoneyFromInt creates a Money from a whole number of currency units.
func NewMoneyFromInt(amount int64) Money {
	return Money{amount: decimal.NewFromInt(amount)}
}

// NewMoneyFromFloat creates a Money from a float64, rounded to two decimals.
// Intended for transport boundaries only; internal arithmetic stays decimal.
func NewMoneyFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount).Round(2)}
}

// MoneyFromString parses a Money from its decimal string representation,
// e.g. "199.50". Used when restoring amounts from persistence or caches.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return Money{amount: d.Round(2)}, nil
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other. The result may be negative; callers that require a
// non-negative amount must check IsNegative themselves.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt returns m multiplied by a whole quantity.
func (m Money) MulInt(qty int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty)))}
}

// Percent returns rate percent of m, rounded to two decimals.
// A rate of 20 yields m*0.20.
func (m Money) Percent(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)}
}

// Min returns the smaller of m and other.
func (m Money) Min(other Money) Money {
	if m.amount.LessThanOrEqual(other.amount) {
		return m
	}
	return other
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether m == 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount for persistence adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64 for transport payloads.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the fixed-point representation with two decimal places,
// e.g. "256.00". Implements fmt.Stringer.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
