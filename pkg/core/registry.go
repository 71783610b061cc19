package core

import "sync"

// Subscription is returned when a listener or observer is registered.
// Cancel removes it; further calls are no-ops.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Cancel unregisters the callback. Safe on a nil Subscription.
func (s *Subscription) Cancel() {
	if s == nil || s.cancel == nil {
		return
	}
	s.once.Do(s.cancel)
}

type registryEntry[T any] struct {
	id uint64
	fn func(T)
}

// registry is an ordered callback list. Notification iterates a copy taken
// under the lock, so callbacks may register or cancel reentrantly.
type registry[T any] struct {
	mu      sync.Mutex
	nextID  uint64
	entries []registryEntry[T]
}

func (r *registry[T]) add(fn func(T)) *Subscription {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.entries = append(r.entries, registryEntry[T]{id: id, fn: fn})
	r.mu.Unlock()
	return &Subscription{cancel: func() { r.remove(id) }}
}

func (r *registry[T]) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
			return
		}
	}
}

func (r *registry[T]) snapshot() []func(T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fns := make([]func(T), len(r.entries))
	for i, e := range r.entries {
		fns[i] = e.fn
	}
	return fns
}

func (r *registry[T]) notify(v T) {
	for _, fn := range r.snapshot() {
		fn(v)
	}
}

func (r *registry[T]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
