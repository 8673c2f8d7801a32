package car

import (
	"car-rental/internal/domain/base"
)

type Car struct {
	base.EntityID
	ReleaseYear int
	Available   bool
	// HasAvailable is copied from the category at seed time and is never
	// consulted when choosing a car.
	HasAvailable bool
}

func NewCar(id, name string, releaseYear int, available, hasAvailable bool) (Car, error) {
	entityID, err := base.NewEntityID(id, name)
	if err != nil {
		return Car{}, err
	}

	return Car{
		EntityID:     entityID,
		ReleaseYear:  releaseYear,
		Available:    available,
		HasAvailable: hasAvailable,
	}, nil
}
