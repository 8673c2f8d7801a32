//go:build unit || e2e

package builder

import (
	reqdto "car-rental/internal/handler/dto/request"
)

type RentRequestBuilder struct {
	Customer     *CustomerBuilder
	Category     *CategoryBuilder
	NumberOfDays int
}

func NewRentRequestBuilder() *RentRequestBuilder {
	return &RentRequestBuilder{
		Customer:     NewCustomerBuilder(),
		Category:     NewCategoryBuilder(),
		NumberOfDays: 5,
	}
}

func (b *RentRequestBuilder) With(mutate func(*RentRequestBuilder)) *RentRequestBuilder {
	mutate(b)
	return b
}

func (b *RentRequestBuilder) WithDays(days int) *RentRequestBuilder {
	b.NumberOfDays = days
	return b
}

func (b *RentRequestBuilder) BuildRequestDTO() reqdto.RentRequest {
	customer := b.Customer.BuildPayload()
	category := b.Category.BuildPayload()
	return reqdto.RentRequest{
		Customer:     &customer,
		CarCategory:  &category,
		NumberOfDays: b.NumberOfDays,
	}
}
