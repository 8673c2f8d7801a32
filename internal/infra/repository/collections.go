package repository

import (
	"log/slog"

	"car-rental/internal/domain/car"
	"car-rental/internal/domain/customer"
	"car-rental/internal/infra/repository/converter"
	"car-rental/internal/infra/store"
	"car-rental/internal/pkg/config"
)

type (
	CarRepository      = Repository[car.Car]
	CategoryRepository = Repository[car.Category]
	CustomerRepository = Repository[customer.Customer]
)

func NewCarRepository(st store.Store, cfg config.StoreConfig, logger *slog.Logger) *CarRepository {
	return New(st, cfg.Cars, converter.DecodeCar, logger)
}

func NewCategoryRepository(st store.Store, cfg config.StoreConfig, logger *slog.Logger) *CategoryRepository {
	return New(st, cfg.Categories, converter.DecodeCategory, logger)
}

func NewCustomerRepository(st store.Store, cfg config.StoreConfig, logger *slog.Logger) *CustomerRepository {
	return New(st, cfg.Customers, converter.DecodeCustomer, logger)
}
