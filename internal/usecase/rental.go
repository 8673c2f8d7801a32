package usecase

//go:generate mockgen -source=rental.go -destination=../../tests/mock/usecase/rental.go -package=usecasemock

import (
	"context"
	"log/slog"
	"time"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/customer"
	"car-rental/internal/domain/rental"
	"car-rental/internal/infra"
	"car-rental/internal/pkg/clock"
	"car-rental/internal/pkg/errs"
)

type RentalUseCase interface {
	GetAvailableCar(ctx context.Context, category car.Category) (car.Car, error)
	CalculateFinalPrice(ctx context.Context, cust customer.Customer, category car.Category, numberOfDays int) (string, error)
	Rent(ctx context.Context, cust customer.Customer, category car.Category, numberOfDays int) (*rental.Receipt, error)
}

type DateFormatter interface {
	LongDate(t time.Time) string
}

type rentalUseCaseImpl struct {
	carRepo    CarRepository
	calculator rental.PriceCalculator
	dates      DateFormatter
	clock      clock.Clock
	location   *time.Location
	logger     *slog.Logger
}

func NewRentalUseCase(
	carRepo CarRepository,
	calculator rental.PriceCalculator,
	dates DateFormatter,
	clock clock.Clock,
	location *time.Location,
	logger *slog.Logger,
) RentalUseCase {
	return &rentalUseCaseImpl{
		carRepo:    carRepo,
		calculator: calculator,
		dates:      dates,
		clock:      clock,
		location:   location,
		logger:     logger,
	}
}

// GetAvailableCar picks the first car, in repository order, that the category
// lists and that is not rented.
func (r *rentalUseCaseImpl) GetAvailableCar(ctx context.Context, category car.Category) (car.Car, error) {
	if len(category.CarIDs) == 0 {
		return car.Car{}, errs.Wrapf(errs.ErrCarNotFound, "category %s lists no cars", category.ID)
	}

	found, err := r.carRepo.Find(ctx, car.AvailableIn(category))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return car.Car{}, errs.Wrapf(errs.ErrCarNotFound, "category %s", category.ID)
		}
		return car.Car{}, err
	}
	return found, nil
}

func (r *rentalUseCaseImpl) CalculateFinalPrice(
	_ context.Context,
	cust customer.Customer,
	category car.Category,
	numberOfDays int,
) (string, error) {
	return r.calculator.FinalPrice(category.Price, cust.Age, numberOfDays)
}

// Rent does not mark the chosen car as rented: the stored collection is never
// written back, so the same car can be handed out again.
func (r *rentalUseCaseImpl) Rent(
	ctx context.Context,
	cust customer.Customer,
	category car.Category,
	numberOfDays int,
) (*rental.Receipt, error) {
	chosen, err := r.GetAvailableCar(ctx, category)
	if err != nil {
		return nil, err
	}

	amount, err := r.CalculateFinalPrice(ctx, cust, category, numberOfDays)
	if err != nil {
		return nil, err
	}

	dueDate := r.clock.Now().In(r.location).AddDate(0, 0, numberOfDays)

	r.logger.Info("rental fulfilled",
		"customer_id", cust.ID,
		"category_id", category.ID,
		"car_id", chosen.ID,
		"days", numberOfDays,
	)

	return &rental.Receipt{
		Customer: cust,
		Car:      chosen,
		Amount:   amount,
		DueDate:  r.dates.LongDate(dueDate),
	}, nil
}
