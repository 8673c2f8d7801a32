//go:build unit

package rental_test

import (
	"math"
	"testing"

	"car-rental/internal/domain/rental"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/pkg/locale"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPriceCalculator_FinalPrice(t *testing.T) {
	formatter := locale.NewBrazilian()

	cases := []struct {
		name   string
		policy *rental.TaxPolicy
		price  float64
		age    int
		days   int
		want   string
	}{
		{name: "default table, age 50", policy: rental.DefaultTaxPolicy(), price: 37.6, age: 50, days: 5, want: "R$\u00a0188,00"},
		{name: "default table, age 20", policy: rental.DefaultTaxPolicy(), price: 37.6, age: 20, days: 5, want: "R$\u00a0244,40"},
		{name: "default table, age 30", policy: rental.DefaultTaxPolicy(), price: 37.6, age: 30, days: 5, want: "R$\u00a0206,80"},
		{name: "legacy table, age 20", policy: rental.LegacyTaxPolicy(), price: 37.6, age: 20, days: 5, want: "R$\u00a0206,80"},
		{name: "legacy table, age 50", policy: rental.LegacyTaxPolicy(), price: 37.6, age: 50, days: 5, want: "R$\u00a0244,40"},
		{name: "thousands are grouped", policy: rental.DefaultTaxPolicy(), price: 246.9, age: 60, days: 5, want: "R$\u00a01.234,50"},
		{name: "zero price", policy: rental.DefaultTaxPolicy(), price: 0, age: 60, days: 3, want: "R$\u00a00,00"},
		{name: "single day", policy: rental.DefaultTaxPolicy(), price: 10, age: 41, days: 1, want: "R$\u00a010,00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calc := rental.NewDefaultPriceCalculator(tc.policy, formatter)
			got, err := calc.FinalPrice(tc.price, tc.age, tc.days)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDefaultPriceCalculator_Errors(t *testing.T) {
	calc := rental.NewDefaultPriceCalculator(rental.DefaultTaxPolicy(), locale.NewBrazilian())

	t.Run("non-positive duration", func(t *testing.T) {
		for _, days := range []int{0, -1} {
			_, err := calc.FinalPrice(37.6, 50, days)
			assert.ErrorIs(t, err, errs.ErrInvalidDuration, "days %d", days)
		}
	})

	t.Run("age below every band", func(t *testing.T) {
		_, err := calc.FinalPrice(37.6, 17, 5)
		assert.ErrorIs(t, err, errs.ErrInvalidAge)
	})

	t.Run("overflowing amount", func(t *testing.T) {
		_, err := calc.FinalPrice(1e17, 50, 5)
		assert.ErrorIs(t, err, errs.ErrAmountOutOfRange)
	})

	t.Run("duration is checked before age", func(t *testing.T) {
		_, err := calc.FinalPrice(37.6, 17, 0)
		assert.ErrorIs(t, err, errs.ErrInvalidDuration)
	})
}

func TestDefaultPriceCalculator_Quote(t *testing.T) {
	calc := rental.NewDefaultPriceCalculator(rental.DefaultTaxPolicy(), locale.NewBrazilian())

	t.Run("rounds once after multiplying", func(t *testing.T) {
		// 0.333 * 1.3 * 3 = 1.2987 -> 1.30; rounding per day would give 1.29.
		got, err := calc.Quote(0.333, 20, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(130), got.Cents())
	})

	t.Run("monotonic in days", func(t *testing.T) {
		prev := int64(-1)
		for days := 1; days <= 30; days++ {
			got, err := calc.Quote(37.6, 33, days)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got.Cents(), prev, "days %d", days)
			prev = got.Cents()
		}
	})

	t.Run("monotonic in price", func(t *testing.T) {
		prev := int64(-1)
		for price := 0.0; price <= 200; price += 12.5 {
			got, err := calc.Quote(price, 33, 4)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got.Cents(), prev, "price %v", price)
			prev = got.Cents()
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		first, err := calc.FinalPrice(37.6, 50, 5)
		require.NoError(t, err)
		second, err := calc.FinalPrice(37.6, 50, 5)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestMoney(t *testing.T) {
	cases := []struct {
		amount float64
		cents  int64
	}{
		{amount: 188, cents: 18800},
		{amount: 1.005, cents: 100}, // 1.005 is stored as 1.00499...
		{amount: 2.675, cents: 267},
		{amount: 0.125, cents: 13},
		{amount: -0.125, cents: -13},
	}
	for _, tc := range cases {
		got, err := rental.MoneyFromAmount(tc.amount)
		require.NoError(t, err, "amount %v", tc.amount)
		assert.Equal(t, tc.cents, got.Cents(), "amount %v", tc.amount)
	}
	assert.InDelta(t, 12.34, rental.NewMoney(1234).Amount(), 1e-9)

	t.Run("amounts past int64 cents are rejected", func(t *testing.T) {
		for _, amount := range []float64{1e17, -1e17, math.MaxFloat64, math.Inf(1), math.NaN()} {
			_, err := rental.MoneyFromAmount(amount)
			assert.ErrorIs(t, err, errs.ErrAmountOutOfRange, "amount %v", amount)
		}
	})
}
