//go:build unit || e2e

package builder

import (
	"car-rental/internal/domain/customer"
	reqdto "car-rental/internal/handler/dto/request"
	"car-rental/internal/infra/repository/converter"
)

type CustomerBuilder struct {
	ID   string
	Name string
	Age  int
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:   "customer-1",
		Name: "Maria Silva",
		Age:  50,
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

func (b *CustomerBuilder) WithAge(age int) *CustomerBuilder {
	b.Age = age
	return b
}

// Build methods
func (b *CustomerBuilder) BuildDomain() (customer.Customer, error) {
	return customer.NewCustomer(b.ID, b.Name, b.Age)
}

func (b *CustomerBuilder) MustBuildDomain() customer.Customer {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}

func (b *CustomerBuilder) BuildRecord() converter.CustomerRecord {
	return converter.CustomerToRecord(b.MustBuildDomain())
}

func (b *CustomerBuilder) BuildPayload() reqdto.CustomerPayload {
	age := b.Age
	return reqdto.CustomerPayload{
		ID:   b.ID,
		Name: b.Name,
		Age:  &age,
	}
}
