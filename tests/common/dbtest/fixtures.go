//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"car-rental/internal/infra/store"
	"car-rental/internal/pkg/config"
	"car-rental/tests/common/builder"

	"github.com/stretchr/testify/require"
)

// Reference data shared by the e2e suites. car-3 is rented, so the first
// available car of CategoryID in stored order is car-1.
const (
	CategoryID      = "category-1"
	EmptyCategoryID = "category-empty"
	AdultID         = "customer-1" // age 50
	YoungID         = "customer-2" // age 20
	MinorID         = "customer-3" // age 17
)

func SeedReferenceData(t *testing.T, st store.Store, cfg config.StoreConfig) {
	t.Helper()
	ctx := context.Background()

	cars := []any{
		builder.NewCarBuilder().WithID("car-3").WithAvailable(false).BuildRecord(),
		builder.NewCarBuilder().WithID("car-1").BuildRecord(),
		builder.NewCarBuilder().WithID("car-2").BuildRecord(),
	}
	require.NoError(t, st.Save(ctx, cfg.Cars, cars))

	categories := []any{
		builder.NewCategoryBuilder().WithCarIDs("car-3", "car-2", "car-1").BuildRecord(),
		builder.NewCategoryBuilder().With(func(b *builder.CategoryBuilder) {
			b.ID = EmptyCategoryID
			b.Name = "Empty"
			b.CarIDs = nil
		}).BuildRecord(),
	}
	require.NoError(t, st.Save(ctx, cfg.Categories, categories))

	customers := []any{
		builder.NewCustomerBuilder().BuildRecord(),
		builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) { b.ID = YoungID; b.Age = 20 }).BuildRecord(),
		builder.NewCustomerBuilder().With(func(b *builder.CustomerBuilder) { b.ID = MinorID; b.Age = 17 }).BuildRecord(),
	}
	require.NoError(t, st.Save(ctx, cfg.Customers, customers))
}

// ResetCollections empties the Postgres document store.
func ResetCollections(ctx context.Context, db store.DBTX) error {
	_, err := db.Exec(ctx, "TRUNCATE TABLE collections")
	return err
}

// CollectionLength reports how many records a stored collection holds, or -1
// when the collection does not exist.
func CollectionLength(t *testing.T, db store.DBTX, name string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT jsonb_array_length(documents) FROM collections WHERE name = $1), -1)", name).Scan(&n)
	require.NoError(t, err)
	return n
}
