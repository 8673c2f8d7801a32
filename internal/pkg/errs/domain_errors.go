package errs

import "errors"

// Sentinel error kinds shared by the rental core and its collaborators.
var (
	// Persistence unreachable or malformed. Fatal, never retried.
	ErrDataSource = errors.New("data source error")

	// Rental errors
	ErrCarNotFound      = errors.New("no available car in category")
	ErrInvalidAge       = errors.New("customer age outside every tax band")
	ErrInvalidDuration  = errors.New("number of days must be at least 1")
	ErrAmountOutOfRange = errors.New("rental amount out of range")

	// Catalog errors
	ErrCategoryNotFound = errors.New("car category not found")
	ErrCustomerNotFound = errors.New("customer not found")
)
