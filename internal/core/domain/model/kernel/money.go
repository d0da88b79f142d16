package kernel

import (
	"fmt"

	"github.com/drakon-axiom/kit-maker-sub003/internal/pkg/errs"
)

// Money is a monetary amount in integer cents. Cents avoid the float
// rounding problems that plague subtotal and deposit arithmetic.
type Money int64

// NewMoneyFromCents creates a Money value from integer cents.
// Negative amounts are rejected: subtotals and deposits are never negative.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money(cents), nil
}

// Cents returns the raw amount in cents.
func (m Money) Cents() int64 {
	return int64(m)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m == 0
}

// String formats the amount as a decimal string, e.g. "125.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m/100, m%100)
}
