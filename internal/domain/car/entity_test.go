//go:build unit

package car_test

import (
	"testing"

	"car-rental/internal/domain/base"
	"car-rental/internal/domain/car"
	"car-rental/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCar(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCarBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "car-1", actual.ID)
		assert.Equal(t, "Fiat Uno", actual.Name)
		assert.Equal(t, 2020, actual.ReleaseYear)
		assert.True(t, actual.Available)
		assert.True(t, actual.HasAvailable)
	})

	t.Run("identity validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.CarBuilder)
			errIs  error
		}{
			{name: "empty id", mutate: func(b *builder.CarBuilder) { b.ID = "" }, errIs: base.ErrEmptyID},
			{name: "whitespace id", mutate: func(b *builder.CarBuilder) { b.ID = "  " }, errIs: base.ErrEmptyID},
			{name: "empty name", mutate: func(b *builder.CarBuilder) { b.Name = "" }, errIs: base.ErrEmptyName},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := builder.NewCarBuilder().With(tc.mutate).BuildDomain()
				require.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("ids are trimmed", func(t *testing.T) {
		actual, err := car.NewCar(" car-9 ", " Gol ", 2019, false, true)
		require.NoError(t, err)
		assert.Equal(t, "car-9", actual.ID)
		assert.Equal(t, "Gol", actual.Name)
		assert.True(t, actual.Is("car-9"))
	})
}

func TestCategory(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCategoryBuilder().WithCarIDs("a", "b").BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b"}, actual.CarIDs)
		assert.InDelta(t, 37.6, actual.Price, 1e-9)
		assert.True(t, actual.Includes("b"))
		assert.False(t, actual.Includes("c"))
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := builder.NewCategoryBuilder().WithPrice(-0.01).BuildDomain()
		require.ErrorIs(t, err, car.ErrNegativePrice)
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		_, err := builder.NewCategoryBuilder().WithPrice(0).BuildDomain()
		require.NoError(t, err)
	})

	t.Run("car ids are copied", func(t *testing.T) {
		ids := []string{"a", "b"}
		actual, err := car.NewCategory("c1", "SUV", ids, 10)
		require.NoError(t, err)

		ids[0] = "z"
		assert.Equal(t, "a", actual.CarIDs[0])
	})
}

func TestAvailableIn(t *testing.T) {
	category := builder.NewCategoryBuilder().WithCarIDs("car-1", "car-2").MustBuildDomain()
	match := car.AvailableIn(category)

	cases := []struct {
		name string
		car  car.Car
		want bool
	}{
		{name: "listed and available", car: builder.NewCarBuilder().WithID("car-1").MustBuildDomain(), want: true},
		{name: "listed but rented", car: builder.NewCarBuilder().WithID("car-2").WithAvailable(false).MustBuildDomain(), want: false},
		{name: "available but not listed", car: builder.NewCarBuilder().WithID("car-3").MustBuildDomain(), want: false},
		{
			name: "hasAvailable is ignored",
			car: builder.NewCarBuilder().WithID("car-1").
				With(func(b *builder.CarBuilder) { b.HasAvailable = false }).MustBuildDomain(),
			want: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, match(tc.car))
		})
	}

	t.Run("empty category matches nothing", func(t *testing.T) {
		empty := builder.NewCategoryBuilder().WithCarIDs().MustBuildDomain()
		assert.False(t, car.AvailableIn(empty)(builder.NewCarBuilder().MustBuildDomain()))
	})
}
