package converter

import (
	"encoding/json"

	"car-rental/internal/domain/customer"
)

type CustomerRecord struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
	Age  *int   `json:"age" validate:"required,gte=0"`
}

func DecodeCustomer(raw json.RawMessage) (customer.Customer, error) {
	var rec CustomerRecord
	if err := decodeRecord(raw, &rec); err != nil {
		return customer.Customer{}, err
	}
	return customer.NewCustomer(rec.ID, rec.Name, *rec.Age)
}

func CustomerToRecord(c customer.Customer) CustomerRecord {
	age := c.Age
	return CustomerRecord{ID: c.ID, Name: c.Name, Age: &age}
}
