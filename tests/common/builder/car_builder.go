//go:build unit || e2e

package builder

import (
	"car-rental/internal/domain/car"
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/infra/repository/converter"
	"car-rental/internal/pkg/numstr"
)

type CarBuilder struct {
	ID           string
	Name         string
	ReleaseYear  int
	Available    bool
	HasAvailable bool
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		ID:           "car-1",
		Name:         "Fiat Uno",
		ReleaseYear:  2020,
		Available:    true,
		HasAvailable: true,
	}
}

func (b *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(b)
	return b
}

func (b *CarBuilder) WithID(id string) *CarBuilder {
	b.ID = id
	return b
}

func (b *CarBuilder) WithAvailable(available bool) *CarBuilder {
	b.Available = available
	return b
}

// Build methods
func (b *CarBuilder) BuildDomain() (car.Car, error) {
	return car.NewCar(b.ID, b.Name, b.ReleaseYear, b.Available, b.HasAvailable)
}

func (b *CarBuilder) MustBuildDomain() car.Car {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}

func (b *CarBuilder) BuildRecord() converter.CarRecord {
	return converter.CarToRecord(b.MustBuildDomain())
}

type CategoryBuilder struct {
	ID     string
	Name   string
	CarIDs []string
	Price  float64
}

func NewCategoryBuilder() *CategoryBuilder {
	return &CategoryBuilder{
		ID:     "category-1",
		Name:   "Hatch",
		CarIDs: []string{"car-1"},
		Price:  37.6,
	}
}

func (b *CategoryBuilder) With(mutate func(*CategoryBuilder)) *CategoryBuilder {
	mutate(b)
	return b
}

func (b *CategoryBuilder) WithCarIDs(ids ...string) *CategoryBuilder {
	b.CarIDs = ids
	return b
}

func (b *CategoryBuilder) WithPrice(price float64) *CategoryBuilder {
	b.Price = price
	return b
}

func (b *CategoryBuilder) BuildDomain() (car.Category, error) {
	return car.NewCategory(b.ID, b.Name, b.CarIDs, b.Price)
}

func (b *CategoryBuilder) MustBuildDomain() car.Category {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}

func (b *CategoryBuilder) BuildRecord() converter.CategoryRecord {
	return converter.CategoryToRecord(b.MustBuildDomain())
}

func (b *CategoryBuilder) BuildPayload() reqdto.CarCategoryPayload {
	price := numstr.Float(b.Price)
	return reqdto.CarCategoryPayload{
		ID:     b.ID,
		Name:   b.Name,
		CarIDs: b.CarIDs,
		Price:  &price,
	}
}
