package car

import (
	"errors"
	"slices"

	"car-rental/internal/domain/base"
)

var ErrNegativePrice = errors.New("category price cannot be negative")

// Category is a named class of cars sharing a daily base price. It only
// references its cars by id and does not own them.
type Category struct {
	base.EntityID
	CarIDs []string
	Price  float64
}

func NewCategory(id, name string, carIDs []string, price float64) (Category, error) {
	entityID, err := base.NewEntityID(id, name)
	if err != nil {
		return Category{}, err
	}
	if price < 0 {
		return Category{}, ErrNegativePrice
	}

	return Category{
		EntityID: entityID,
		CarIDs:   slices.Clone(carIDs),
		Price:    price,
	}, nil
}

func (c Category) Includes(carID string) bool {
	return slices.Contains(c.CarIDs, carID)
}

// AvailableIn matches cars listed by the category that are not currently rented.
func AvailableIn(category Category) func(Car) bool {
	return func(c Car) bool {
		return c.Available && category.Includes(c.ID)
	}
}

func ByID(id string) func(Category) bool {
	return func(c Category) bool {
		return c.Is(id)
	}
}
