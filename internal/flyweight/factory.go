// Package flyweight provides a generic factory that hands out one shared
// instance per distinct intrinsic key.
//
// Instances are built lazily on the first Acquire for a key and are owned by
// the Factory for its whole lifetime. Nothing is ever evicted.
package flyweight

import "sync"

// Entry is a single key/instance pair returned by Factory.Entries.
type Entry[K comparable, V any] struct {
	Key   K
	Value *V
}

// Option configures a Factory.
type Option[K comparable] func(*options[K])

type options[K comparable] struct {
	observer Observer[K]
}

// WithObserver attaches an observer that is told about every Acquire.
func WithObserver[K comparable](o Observer[K]) Option[K] {
	return func(opts *options[K]) {
		opts.observer = o
	}
}

// Factory maps keys to shared instances built by a constructor.
// It is safe for concurrent use.
type Factory[K comparable, V any] struct {
	build    func(K) V
	observer Observer[K]

	mu    sync.RWMutex
	items map[K]*V
}

// New creates a Factory that uses build to construct the value for a key the
// first time that key is requested.
func New[K comparable, V any](build func(K) V, opts ...Option[K]) *Factory[K, V] {
	if build == nil {
		panic("flyweight: nil constructor")
	}

	var o options[K]
	for _, opt := range opts {
		opt(&o)
	}

	return &Factory[K, V]{
		build:    build,
		observer: o.observer,
		items:    make(map[K]*V),
	}
}

// Acquire returns the shared instance for key, creating it if necessary.
// created reports whether this call built the instance (a miss) or reused an
// existing one (a hit).
func (f *Factory[K, V]) Acquire(key K) (v *V, created bool) {
	// Fast path: read lock only.
	f.mu.RLock()
	v, ok := f.items[key]
	f.mu.RUnlock()

	if !ok {
		v, created = f.insert(key)
	}

	if f.observer != nil {
		f.observer.OnAcquire(key, created)
	}
	return v, created
}

// insert re-checks under the write lock so that concurrent first requests for
// the same key build exactly one instance.
func (f *Factory[K, V]) insert(key K) (*V, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if v, ok := f.items[key]; ok {
		return v, false
	}

	v := new(V)
	*v = f.build(key)
	f.items[key] = v
	return v, true
}

// Contains reports whether an instance for key already exists. It never
// creates one.
func (f *Factory[K, V]) Contains(key K) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.items[key]
	return ok
}

// Len returns the number of instances created so far.
func (f *Factory[K, V]) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.items)
}

// Entries returns a snapshot for diagnostics (order is unspecified).
func (f *Factory[K, V]) Entries() []Entry[K, V] {
	f.mu.RLock()
	defer f.mu.RUnlock()

	entries := make([]Entry[K, V], 0, len(f.items))
	for k, v := range f.items {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}
