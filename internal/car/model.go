// Package car defines the car flyweight: the shared model data (name, brand,
// engine type) and the per-use registration data that is combined with it
// only when a car is displayed.
package car

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAttributes is returned by Key.Validate when a required intrinsic
// attribute is blank.
var ErrInvalidAttributes = errors.New("car: invalid attributes")

// Key identifies a car model by its intrinsic attributes. It is a comparable
// struct so it can index a map directly; no separator is involved.
type Key struct {
	Model      string
	Brand      string
	EngineType string
}

// NewKey builds a Key from the three intrinsic attributes.
func NewKey(model, brand, engineType string) Key {
	return Key{Model: model, Brand: brand, EngineType: engineType}
}

// String returns a printable form of the key. Every field is quoted, so two
// different keys never print the same.
func (k Key) String() string {
	return strconv.Quote(k.Model) + "_" + strconv.Quote(k.Brand) + "_" + strconv.Quote(k.EngineType)
}

// Validate rejects keys with empty or whitespace-only attributes.
// The registry accepts any key; validation is up to the caller.
func (k Key) Validate() error {
	switch {
	case strings.TrimSpace(k.Model) == "":
		return fmt.Errorf("%w: model is required", ErrInvalidAttributes)
	case strings.TrimSpace(k.Brand) == "":
		return fmt.Errorf("%w: brand is required", ErrInvalidAttributes)
	case strings.TrimSpace(k.EngineType) == "":
		return fmt.Errorf("%w: engine type is required", ErrInvalidAttributes)
	}
	return nil
}

// Model is the shared, immutable part of a car.
type Model struct {
	name       string
	brand      string
	engineType string
}

func newModel(k Key) Model {
	return Model{name: k.Model, brand: k.Brand, engineType: k.EngineType}
}

func (m *Model) Name() string { return m.name }

func (m *Model) Brand() string { return m.brand }

func (m *Model) EngineType() string { return m.engineType }

// Key returns the key this model is stored under.
func (m *Model) Key() Key {
	return NewKey(m.name, m.brand, m.engineType)
}
