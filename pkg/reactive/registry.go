package reactive

import "sort"

// Callback is invoked with the previous and new value of a changed key.
type Callback func(prev, next any) error

type entry struct {
	id       uint64
	observer bool
	cb       Callback
}

// Registry maps data keys to ordered callback sequences.
type Registry struct {
	chains map[string][]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{chains: make(map[string][]entry)}
}

// Watch appends cb to key's sequence. The returned function removes this
// entry only.
func (r *Registry) Watch(key string, cb Callback) (cancel func()) {
	id := NextID()
	r.chains[key] = append(r.chains[key], entry{id: id, cb: cb})
	return func() { r.remove(key, id, false) }
}

// Subscribe registers observer id for key. It returns false when the
// observer is already subscribed to key.
func (r *Registry) Subscribe(key string, id uint64, cb Callback) bool {
	for _, e := range r.chains[key] {
		if e.observer && e.id == id {
			return false
		}
	}
	r.chains[key] = append(r.chains[key], entry{id: id, observer: true, cb: cb})
	return true
}

// Unsubscribe removes observer id from key.
func (r *Registry) Unsubscribe(key string, id uint64) {
	r.remove(key, id, true)
}

// Notify invokes every callback registered for key, in registration order.
// The first error stops the remaining callbacks and is returned.
func (r *Registry) Notify(key string, prev, next any) error {
	chain := r.chains[key]
	if len(chain) == 0 {
		return nil
	}

	// Copy before notify: callbacks re-subscribe while we iterate.
	snapshot := make([]entry, len(chain))
	copy(snapshot, chain)

	for _, e := range snapshot {
		if err := e.cb(prev, next); err != nil {
			return err
		}
	}
	return nil
}

// Len returns how many callbacks are registered for key.
func (r *Registry) Len(key string) int {
	return len(r.chains[key])
}

// Keys returns the keys that have at least one callback, sorted.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.chains))
	for k, chain := range r.chains {
		if len(chain) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (r *Registry) remove(key string, id uint64, observer bool) {
	chain := r.chains[key]
	for i, e := range chain {
		if e.id == id && e.observer == observer {
			// Order matters: invocation order is registration order.
			r.chains[key] = append(chain[:i:i], chain[i+1:]...)
			if len(r.chains[key]) == 0 {
				delete(r.chains, key)
			}
			return
		}
	}
}
