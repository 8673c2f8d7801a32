package response

import (
	"car-rental/internal/domain/car"
	"car-rental/internal/domain/customer"
	"car-rental/internal/domain/rental"

	"github.com/jinzhu/copier"
)

// Envelope wraps every successful payload as {"result": ...}.
type Envelope[T any] struct {
	Result T `json:"result"`
}

func Wrap[T any](result T) Envelope[T] {
	return Envelope[T]{Result: result}
}

// Field order follows the wire format clients already compare against.

type CarResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ReleaseYear  int    `json:"releaseYear"`
	Available    bool   `json:"available"`
	HasAvailable bool   `json:"hasAvailable"`
}

type CustomerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type CategoryResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	CarIDs []string `json:"carIds"`
	Price  float64  `json:"price"`
}

type ReceiptResponse struct {
	Customer CustomerResponse `json:"customer"`
	Car      CarResponse      `json:"car"`
	Amount   string           `json:"amount"`
	DueDate  string           `json:"dueDate"`
}

func FromCar(c car.Car) CarResponse {
	return copyFrom[CarResponse](&c)
}

func FromCustomer(c customer.Customer) CustomerResponse {
	return copyFrom[CustomerResponse](&c)
}

func FromCategory(c car.Category) CategoryResponse {
	resp := copyFrom[CategoryResponse](&c)
	if resp.CarIDs == nil {
		resp.CarIDs = []string{}
	}
	return resp
}

func FromCategories(cs []car.Category) []CategoryResponse {
	resp := make([]CategoryResponse, len(cs))
	for i, c := range cs {
		resp[i] = FromCategory(c)
	}
	return resp
}

func FromReceipt(r *rental.Receipt) ReceiptResponse {
	return ReceiptResponse{
		Customer: FromCustomer(r.Customer),
		Car:      FromCar(r.Car),
		Amount:   r.Amount,
		DueDate:  r.DueDate,
	}
}

// copyFrom maps an entity onto its response shape by field name; embedded
// identity fields are flattened.
func copyFrom[T any](src any) T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		panic("response mapping: " + err.Error())
	}
	return dst
}
