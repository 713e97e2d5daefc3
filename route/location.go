package route

import "sync"

// Location is the navigation state of the environment hosting the page.
// OnHashChange registers a listener called with the new fragment whenever
// the hash changes; the returned cancel func removes it.
type Location interface {
	Hash() string
	OnHashChange(listener func(fragment string)) (cancel func())
}

type hashListener struct {
	id int
	fn func(string)
}

// MemoryLocation is a Location kept in memory. SetHash notifies listeners
// synchronously, and only when the fragment actually changes.
type MemoryLocation struct {
	mu        sync.Mutex
	hash      string
	listeners []hashListener
	nextID    int
}

func NewMemoryLocation(hash string) *MemoryLocation {
	return &MemoryLocation{hash: Fragment(hash)}
}

func (l *MemoryLocation) Hash() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.hash
}

// SetHash navigates to hash, which may carry a leading '#'.
func (l *MemoryLocation) SetHash(hash string) {
	hash = Fragment(hash)

	l.mu.Lock()
	if hash == l.hash {
		l.mu.Unlock()
		return
	}
	l.hash = hash
	listeners := make([]hashListener, len(l.listeners))
	copy(listeners, l.listeners)
	l.mu.Unlock()

	for _, listener := range listeners {
		listener.fn(hash)
	}
}

func (l *MemoryLocation) OnHashChange(fn func(string)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()

	id := l.nextID
	l.nextID++
	l.listeners = append(l.listeners, hashListener{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(id) })
	}
}

// Listeners reports the number of registered listeners.
func (l *MemoryLocation) Listeners() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.listeners)
}

func (l *MemoryLocation) remove(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, listener := range l.listeners {
		if listener.id == id {
			l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
			return
		}
	}
}
