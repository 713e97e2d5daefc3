package route

import (
	"errors"
	"sync"
)

var ErrMounted = errors.New("resolver already mounted")

type subscriber struct {
	id int
	fn func(Route)
}

// Resolver keeps the current Route in sync with a Location. It holds at most
// one hash-change listener, registered by Mount and released by Unmount.
type Resolver struct {
	mu          sync.Mutex
	current     Route
	cancel      func()
	generation  int
	subscribers []subscriber
	nextID      int
}

func NewResolver() *Resolver {
	return &Resolver{current: Of(Home)}
}

// Mount resolves the location's current hash and starts following its
// changes. Subscribers are notified of the initial route.
func (r *Resolver) Mount(loc Location) error {
	r.mu.Lock()
	if r.cancel != nil {
		r.mu.Unlock()
		return ErrMounted
	}

	r.generation++
	generation := r.generation
	r.cancel = func() {}
	r.mu.Unlock()

	cancel := loc.OnHashChange(func(fragment string) {
		r.resolve(generation, fragment)
	})

	r.mu.Lock()
	if r.generation != generation {
		// Unmounted while registering.
		r.mu.Unlock()
		cancel()
		return nil
	}
	r.cancel = cancel
	r.mu.Unlock()

	r.resolve(generation, loc.Hash())

	return nil
}

// Unmount releases the hash-change listener. Changes signalled afterwards are
// ignored. Unmounting an unmounted resolver is a no-op.
func (r *Resolver) Unmount() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.generation++
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (r *Resolver) Mounted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.cancel != nil
}

func (r *Resolver) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.current
}

// Subscribe registers fn to receive every newly resolved route. The returned
// func removes the subscription and is safe to call more than once.
func (r *Resolver) Subscribe(fn func(Route)) (unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.subscribers = append(r.subscribers, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { r.unsubscribe(id) })
	}
}

func (r *Resolver) unsubscribe(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.subscribers {
		if s.id == id {
			r.subscribers = append(r.subscribers[:i], r.subscribers[i+1:]...)
			return
		}
	}
}

func (r *Resolver) resolve(generation int, fragment string) {
	next := Parse(fragment)

	r.mu.Lock()
	if r.generation != generation {
		r.mu.Unlock()
		return
	}
	r.current = next
	subscribers := make([]subscriber, len(r.subscribers))
	copy(subscribers, r.subscribers)
	r.mu.Unlock()

	for _, s := range subscribers {
		s.fn(next)
	}
}
