// Package catalog keeps an inventory of the car flyweights a registry has
// created. It is fed by the HTTP layer on every miss and lives outside the
// registry itself, so acquiring a flyweight never waits on a backend.
package catalog

import (
	"context"
	"errors"
	"time"

	"flyweight-registry/internal/car"
)

// ErrNilClient is returned by NewCatalog when the redis backend is selected
// without a client.
var ErrNilClient = errors.New("catalog: redis backend requires a client")

// Item describes one created flyweight.
type Item struct {
	Key        string    `json:"key"`
	Model      string    `json:"model"`
	Brand      string    `json:"brand"`
	EngineType string    `json:"engine_type"`
	CreatedAt  time.Time `json:"created_at"`
}

// ItemFromModel builds the catalog item for a shared model.
func ItemFromModel(m *car.Model, createdAt time.Time) Item {
	return Item{
		Key:        m.Key().String(),
		Model:      m.Name(),
		Brand:      m.Brand(),
		EngineType: m.EngineType(),
		CreatedAt:  createdAt.UTC(),
	}
}

// Catalog is the interface used by the handlers.
// Implemented by the memory catalog (dev) and the redis catalog (shared).
type Catalog interface {
	// Record stores item unless an item with the same key already exists.
	Record(ctx context.Context, item Item) error
	List(ctx context.Context) ([]Item, error)
	Count(ctx context.Context) (int, error)
}
