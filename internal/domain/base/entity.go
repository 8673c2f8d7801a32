package base

import (
	"errors"
	"strings"
)

var (
	ErrEmptyID   = errors.New("entity id cannot be empty")
	ErrEmptyName = errors.New("entity name cannot be empty")
)

// EntityID is the identity shared by every persisted record. Ids are assigned
// by whoever creates the record and never change afterwards.
type EntityID struct {
	ID   string
	Name string
}

func NewEntityID(id, name string) (EntityID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return EntityID{}, ErrEmptyID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return EntityID{}, ErrEmptyName
	}
	return EntityID{ID: id, Name: name}, nil
}

func (e EntityID) Is(id string) bool {
	return e.ID == id
}
