package rental

import (
	"fmt"
	"math"

	"car-rental/internal/pkg/errs"
)

// Money is an amount in cents. Prices are rounded into Money exactly once,
// after every factor has been applied.
type Money struct {
	cents int64
}

// maxCents is 2^63 as a float64; anything at or past it does not fit in int64.
const maxCents = float64(1 << 63)

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// MoneyFromAmount rounds half away from zero to the nearest cent. Amounts
// that are not finite or do not fit in int64 cents fail with
// errs.ErrAmountOutOfRange.
func MoneyFromAmount(amount float64) (Money, error) {
	cents := math.Round(amount * 100)
	if !(cents > -maxCents && cents < maxCents) {
		return Money{}, errs.Wrap(errs.ErrAmountOutOfRange, fmt.Sprintf("amount %v", amount))
	}
	return Money{cents: int64(cents)}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}
