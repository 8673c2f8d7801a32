package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports.go -package=usecasemock

import (
	"context"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/customer"
)

// Repositories return an infra.KindNotFound error when nothing matches and a
// data source error (errors.Is(err, errs.ErrDataSource)) when the backing
// collection cannot be loaded.

type CarRepository interface {
	Find(ctx context.Context, match func(car.Car) bool) (car.Car, error)
}

type CategoryRepository interface {
	Find(ctx context.Context, match func(car.Category) bool) (car.Category, error)
	FindAll(ctx context.Context) ([]car.Category, error)
}

type CustomerRepository interface {
	Find(ctx context.Context, match func(customer.Customer) bool) (customer.Customer, error)
}
