package usecase

//go:generate mockgen -source=catalog.go -destination=../../tests/mock/usecase/catalog.go -package=usecasemock

import (
	"context"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/customer"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/errs"
)

// CatalogQueries exposes the seeded categories and customers read-only.
type CatalogQueries interface {
	ListCategories(ctx context.Context) ([]car.Category, error)
	GetCategory(ctx context.Context, id string) (car.Category, error)
	GetCustomer(ctx context.Context, id string) (customer.Customer, error)
}

type catalogQueriesImpl struct {
	categoryRepo CategoryRepository
	customerRepo CustomerRepository
}

func NewCatalogQueries(categoryRepo CategoryRepository, customerRepo CustomerRepository) CatalogQueries {
	return &catalogQueriesImpl{
		categoryRepo: categoryRepo,
		customerRepo: customerRepo,
	}
}

func (q *catalogQueriesImpl) ListCategories(ctx context.Context) ([]car.Category, error) {
	return q.categoryRepo.FindAll(ctx)
}

func (q *catalogQueriesImpl) GetCategory(ctx context.Context, id string) (car.Category, error) {
	category, err := q.categoryRepo.Find(ctx, car.ByID(id))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return car.Category{}, errs.Wrap(errs.ErrCategoryNotFound, id)
		}
		return car.Category{}, err
	}
	return category, nil
}

func (q *catalogQueriesImpl) GetCustomer(ctx context.Context, id string) (customer.Customer, error) {
	found, err := q.customerRepo.Find(ctx, customer.ByID(id))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return customer.Customer{}, errs.Wrap(errs.ErrCustomerNotFound, id)
		}
		return customer.Customer{}, err
	}
	return found, nil
}
