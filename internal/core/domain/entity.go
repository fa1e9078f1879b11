package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrImmutableID is returned when code tries to reassign the identifier of an
// entity that already has one. Identity is assigned exactly once.
var ErrImmutableID = errors.New("entity identifier is immutable")

type ID string

func NextID() ID {
	return ID(uuid.NewString())
}

func ValidateID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Entity is the base for every identity-bearing domain object.
type Entity struct {
	id        ID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewEntity() Entity {
	now := time.Now()
	return Entity{CreatedAt: now, UpdatedAt: now}
}

func (e *Entity) ID() ID {
	return e.id
}

// SetID assigns the identifier. It fails once an id is present; rehydration
// from storage is the only place that should ever call it besides creation.
func (e *Entity) SetID(id ID) error {
	if e.id != "" {
		return ErrImmutableID
	}
	e.id = id
	return nil
}

func (e *Entity) Touch() {
	e.UpdatedAt = time.Now()
}
