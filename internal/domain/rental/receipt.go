package rental

import (
	"car-rental/internal/domain/car"
	"car-rental/internal/domain/customer"
)

// Receipt is the outcome of a successful rental. It is handed back to the
// caller and never stored.
type Receipt struct {
	Customer customer.Customer
	Car      car.Car
	Amount   string
	DueDate  string
}
