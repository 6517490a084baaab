package flyweight

// Observer receives the hit/miss outcome of every Acquire.
// It is called synchronously after the lookup completes, outside the
// factory's lock.
type Observer[K comparable] interface {
	OnAcquire(key K, created bool)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc[K comparable] func(key K, created bool)

// OnAcquire implements Observer.
func (f ObserverFunc[K]) OnAcquire(key K, created bool) {
	if f == nil {
		return
	}
	f(key, created)
}

// Observers fans a single outcome out to several observers in order.
type Observers[K comparable] []Observer[K]

// OnAcquire implements Observer.
func (os Observers[K]) OnAcquire(key K, created bool) {
	for _, o := range os {
		if o != nil {
			o.OnAcquire(key, created)
		}
	}
}
