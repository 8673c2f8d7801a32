//go:build unit

package components_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"car-rental/cmd/bootstrap/components"
	"car-rental/internal/domain/car"
	"car-rental/internal/domain/customer"
	"car-rental/internal/infra/store"
	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/errs"
	"car-rental/internal/usecase"
	storemock "car-rental/tests/mock/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
)

type repositories struct {
	fx.In

	Cars       usecase.CarRepository
	Categories usecase.CategoryRepository
	Customers  usecase.CustomerRepository
}

func startRepositories(t *testing.T, st store.Store) repositories {
	t.Helper()

	var repos repositories
	app := fxtest.New(t,
		fx.Provide(
			func() store.Store { return st },
			func() config.StoreConfig { return config.NewTestConfig().Store },
			func() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) },
		),
		components.RepositoryModule,
		fx.Populate(&repos),
		fx.NopLogger,
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)
	return repos
}

func TestRepositoryModule_WarmUp(t *testing.T) {
	cfg := config.NewTestConfig().Store

	t.Run("loads each collection once, before the first lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := storemock.NewMockStore(ctrl)
		st.EXPECT().Load(gomock.Any(), cfg.Cars).
			Return([]json.RawMessage{json.RawMessage(`{"id":"car-1","name":"Uno","releaseYear":2020,"available":true}`)}, nil).
			Times(1)
		st.EXPECT().Load(gomock.Any(), cfg.Categories).
			Return([]json.RawMessage{json.RawMessage(`{"id":"category-1","name":"Hatch","carIds":["car-1"],"price":"37.60"}`)}, nil).
			Times(1)
		st.EXPECT().Load(gomock.Any(), cfg.Customers).
			Return([]json.RawMessage{json.RawMessage(`{"id":"customer-1","name":"Maria","age":50}`)}, nil).
			Times(1)

		repos := startRepositories(t, st)

		found, err := repos.Cars.Find(t.Context(), func(c car.Car) bool { return c.ID == "car-1" })
		require.NoError(t, err)
		assert.Equal(t, "Uno", found.Name)

		categories, err := repos.Categories.FindAll(t.Context())
		require.NoError(t, err)
		assert.Len(t, categories, 1)

		_, err = repos.Customers.Find(t.Context(), func(c customer.Customer) bool { return c.Age == 50 })
		require.NoError(t, err)
	})

	t.Run("unreadable collections do not block start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		st := storemock.NewMockStore(ctrl)
		st.EXPECT().Load(gomock.Any(), cfg.Cars).Return(nil, store.ErrCollectionNotFound).Times(1)
		st.EXPECT().Load(gomock.Any(), cfg.Categories).Return([]json.RawMessage{}, nil).Times(1)
		st.EXPECT().Load(gomock.Any(), cfg.Customers).Return([]json.RawMessage{}, nil).Times(1)

		repos := startRepositories(t, st)

		// The failed warm-up load is the one every request sees.
		_, err := repos.Cars.Find(t.Context(), func(car.Car) bool { return true })
		assert.True(t, errs.Is(err, errs.ErrDataSource))
	})
}
