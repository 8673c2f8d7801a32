package request

import (
	"car-rental/internal/domain/car"
	"car-rental/internal/domain/customer"
	"car-rental/internal/pkg/numstr"
)

type CustomerPayload struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
	Age  *int   `json:"age" binding:"required"`
}

func (p CustomerPayload) ToDomain() (customer.Customer, error) {
	return customer.NewCustomer(p.ID, p.Name, *p.Age)
}

type CarCategoryPayload struct {
	ID     string        `json:"id" binding:"required"`
	Name   string        `json:"name" binding:"required"`
	CarIDs []string      `json:"carIds" binding:"omitempty,dive,required"`
	Price  *numstr.Float `json:"price" binding:"required"`
}

func (p CarCategoryPayload) ToDomain() (car.Category, error) {
	return car.NewCategory(p.ID, p.Name, p.CarIDs, p.Price.Float64())
}

// RentRequest is the body of both /rent and /calculateFinalPrice.
// numberOfDays is range-checked by the pricing rules, not by binding.
type RentRequest struct {
	Customer     *CustomerPayload    `json:"customer" binding:"required"`
	CarCategory  *CarCategoryPayload `json:"carCategory" binding:"required"`
	NumberOfDays int                 `json:"numberOfDays"`
}

func (r RentRequest) ToDomain() (customer.Customer, car.Category, error) {
	cust, err := r.Customer.ToDomain()
	if err != nil {
		return customer.Customer{}, car.Category{}, err
	}
	category, err := r.CarCategory.ToDomain()
	if err != nil {
		return customer.Customer{}, car.Category{}, err
	}
	return cust, category, nil
}
