package car

import "flyweight-registry/internal/flyweight"

// Registry hands out shared *Model values, one per distinct Key.
type Registry struct {
	models *flyweight.Factory[Key, Model]
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...flyweight.Option[Key]) *Registry {
	return &Registry{
		models: flyweight.New(newModel, opts...),
	}
}

// Acquire returns the shared model for the given attributes. created is true
// when this call built the model.
func (r *Registry) Acquire(model, brand, engineType string) (*Model, bool) {
	return r.AcquireKey(NewKey(model, brand, engineType))
}

// AcquireKey is Acquire for a pre-built key.
func (r *Registry) AcquireKey(k Key) (*Model, bool) {
	return r.models.Acquire(k)
}

// Len returns how many distinct models have been created.
func (r *Registry) Len() int {
	return r.models.Len()
}

// Models returns every model created so far (order is unspecified).
func (r *Registry) Models() []*Model {
	entries := r.models.Entries()
	out := make([]*Model, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Value)
	}
	return out
}
