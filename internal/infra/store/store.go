// Package store persists flat collections of JSON records under a name.
// It knows nothing about the records' shape; decoding and validation happen
// in the repositories.
package store

//go:generate mockgen -source=store.go -destination=../../../tests/mock/store/store.go -package=storemock

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrMalformed          = errors.New("collection is not a JSON array")
)

type Store interface {
	// Load returns the records of the named collection in stored order.
	Load(ctx context.Context, name string) ([]json.RawMessage, error)
	// Save replaces the named collection. records must marshal to a JSON array.
	Save(ctx context.Context, name string, records any) error
}

func decodeArray(data []byte) ([]json.RawMessage, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func encodeArray(records any) ([]byte, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	// Reject anything that does not round-trip as an array.
	if _, err := decodeArray(data); err != nil {
		return nil, ErrMalformed
	}
	return data, nil
}
