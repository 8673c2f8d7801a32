package converter

import (
	"encoding/json"

	"car-rental/internal/domain/car"
	"car-rental/internal/pkg/numstr"
)

type CarRecord struct {
	ID           string `json:"id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	ReleaseYear  int    `json:"releaseYear" validate:"gte=0"`
	Available    *bool  `json:"available" validate:"required"`
	HasAvailable bool   `json:"hasAvailable"`
}

func DecodeCar(raw json.RawMessage) (car.Car, error) {
	var rec CarRecord
	if err := decodeRecord(raw, &rec); err != nil {
		return car.Car{}, err
	}
	return car.NewCar(rec.ID, rec.Name, rec.ReleaseYear, *rec.Available, rec.HasAvailable)
}

func CarToRecord(c car.Car) CarRecord {
	available := c.Available
	return CarRecord{
		ID:           c.ID,
		Name:         c.Name,
		ReleaseYear:  c.ReleaseYear,
		Available:    &available,
		HasAvailable: c.HasAvailable,
	}
}

type CategoryRecord struct {
	ID     string        `json:"id" validate:"required"`
	Name   string        `json:"name" validate:"required"`
	CarIDs []string      `json:"carIds" validate:"required,dive,required"`
	Price  *numstr.Float `json:"price" validate:"required"`
}

func DecodeCategory(raw json.RawMessage) (car.Category, error) {
	var rec CategoryRecord
	if err := decodeRecord(raw, &rec); err != nil {
		return car.Category{}, err
	}
	return car.NewCategory(rec.ID, rec.Name, rec.CarIDs, rec.Price.Float64())
}

func CategoryToRecord(c car.Category) CategoryRecord {
	price := numstr.Float(c.Price)
	carIDs := c.CarIDs
	if carIDs == nil {
		carIDs = []string{}
	}
	return CategoryRecord{
		ID:     c.ID,
		Name:   c.Name,
		CarIDs: carIDs,
		Price:  &price,
	}
}
