package catalog

import (
	"context"
	"sort"
	"sync"
)

// MemoryCatalog is a process-local Catalog.
type MemoryCatalog struct {
	mu    sync.RWMutex
	items map[string]Item
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{items: make(map[string]Item)}
}

// Record keeps the first item seen for a key.
func (c *MemoryCatalog) Record(ctx context.Context, item Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.items[item.Key]; !exists {
		c.items[item.Key] = item
	}
	return nil
}

// List returns all items ordered by key.
func (c *MemoryCatalog) List(ctx context.Context) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	out := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, it)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (c *MemoryCatalog) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items), nil
}
