package customer

import (
	"errors"

	"car-rental/internal/domain/base"
)

var ErrNegativeAge = errors.New("customer age cannot be negative")

type Customer struct {
	base.EntityID
	Age int
}

func NewCustomer(id, name string, age int) (Customer, error) {
	entityID, err := base.NewEntityID(id, name)
	if err != nil {
		return Customer{}, err
	}
	if age < 0 {
		return Customer{}, ErrNegativeAge
	}

	return Customer{EntityID: entityID, Age: age}, nil
}

func ByID(id string) func(Customer) bool {
	return func(c Customer) bool {
		return c.Is(id)
	}
}
