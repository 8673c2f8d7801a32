// Package seed generates a small demo dataset and writes it to a store.
package seed

import (
	"context"
	"math"
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/customer"
	"car-rental/internal/infra/repository/converter"
	"car-rental/internal/infra/store"
	"car-rental/internal/pkg/config"
	"car-rental/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	DefaultItems = 3

	minPrice = 20.0
	maxPrice = 100.0
	minAge   = 18
	maxAge   = 50
)

// Dataset is one category holding every generated car, plus the customers.
type Dataset struct {
	Cars       []car.Car
	Categories []car.Category
	Customers  []customer.Customer
}

// Generate builds items available cars and items customers. Every car belongs
// to the single generated category. The same faker seed yields the same dataset.
func Generate(faker *gofakeit.Faker, items int, now time.Time) (Dataset, error) {
	if items < 1 {
		return Dataset{}, errs.Newf("items must be positive, got %d", items)
	}

	ds := Dataset{
		Cars:      make([]car.Car, 0, items),
		Customers: make([]customer.Customer, 0, items),
	}
	carIDs := make([]string, 0, items)

	for range items {
		releaseYear := now.AddDate(0, 0, -faker.IntRange(0, 364)).Year()
		c, err := car.NewCar(faker.UUID(), faker.CarModel(), releaseYear, true, true)
		if err != nil {
			return Dataset{}, err
		}
		ds.Cars = append(ds.Cars, c)
		carIDs = append(carIDs, c.ID)

		cust, err := customer.NewCustomer(faker.UUID(), faker.Name(), faker.IntRange(minAge, maxAge))
		if err != nil {
			return Dataset{}, err
		}
		ds.Customers = append(ds.Customers, cust)
	}

	price := math.Round(faker.Price(minPrice, maxPrice)*100) / 100
	category, err := car.NewCategory(faker.UUID(), faker.CarType(), carIDs, price)
	if err != nil {
		return Dataset{}, err
	}
	ds.Categories = []car.Category{category}

	return ds, nil
}

// Write replaces the three collections named by cfg.
func Write(ctx context.Context, st store.Store, cfg config.StoreConfig, ds Dataset) error {
	cars := make([]converter.CarRecord, len(ds.Cars))
	for i, c := range ds.Cars {
		cars[i] = converter.CarToRecord(c)
	}
	categories := make([]converter.CategoryRecord, len(ds.Categories))
	for i, c := range ds.Categories {
		categories[i] = converter.CategoryToRecord(c)
	}
	customers := make([]converter.CustomerRecord, len(ds.Customers))
	for i, c := range ds.Customers {
		customers[i] = converter.CustomerToRecord(c)
	}

	if err := st.Save(ctx, cfg.Cars, cars); err != nil {
		return errs.Wrapf(err, "save %s", cfg.Cars)
	}
	if err := st.Save(ctx, cfg.Categories, categories); err != nil {
		return errs.Wrapf(err, "save %s", cfg.Categories)
	}
	if err := st.Save(ctx, cfg.Customers, customers); err != nil {
		return errs.Wrapf(err, "save %s", cfg.Customers)
	}
	return nil
}
