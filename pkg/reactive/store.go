package reactive

import (
	"sort"

	"github.com/vango-dev/vmini/internal/errors"
)

// Method is a named method invoked with the store as its receiver.
type Method func(s *Store, args ...any) (any, error)

// BoundMethod is a Method bound to a store.
type BoundMethod func(args ...any) (any, error)

// Store is an observable mapping over an instance's backing data.
type Store struct {
	data    map[string]any
	methods map[string]Method
	fields  map[string]any
	reg     *Registry

	// pass is the active tracking pass, nil outside Track.
	pass *trackingPass
}

// trackingPass records the distinct data keys read during one pass.
type trackingPass struct {
	seen map[string]struct{}
	keys []string
}

func (p *trackingPass) record(key string) {
	if _, ok := p.seen[key]; ok {
		return
	}
	p.seen[key] = struct{}{}
	p.keys = append(p.keys, key)
}

// NewStore creates a store over a copy of data. Writes to data keys notify
// through reg.
func NewStore(data map[string]any, methods map[string]Method, reg *Registry) *Store {
	backing := make(map[string]any, len(data))
	for k, v := range data {
		backing[k] = v
	}
	if reg == nil {
		reg = NewRegistry()
	}
	return &Store{
		data:    backing,
		methods: methods,
		fields:  make(map[string]any),
		reg:     reg,
	}
}

// Registry returns the registry the store notifies.
func (s *Store) Registry() *Registry {
	return s.reg
}

// Get returns the value for key.
//
// A data key is recorded in the active tracking pass, if any. A method name
// returns a BoundMethod. Anything else reads the store's own fields, which
// are never tracked.
func (s *Store) Get(key string) any {
	if v, ok := s.data[key]; ok {
		if s.pass != nil {
			s.pass.record(key)
		}
		return v
	}
	if m, ok := s.methods[key]; ok {
		return s.bind(m)
	}
	return s.fields[key]
}

// Set writes key. A data key is stored and then every callback registered
// for it is notified with the previous and new value, even when they are
// equal. Any other key is stored as an own field without notification.
func (s *Store) Set(key string, value any) error {
	prev, ok := s.data[key]
	if !ok {
		s.fields[key] = value
		return nil
	}
	s.data[key] = value
	return s.reg.Notify(key, prev, value)
}

// Call invokes the named method with the store as receiver.
func (s *Store) Call(name string, args ...any) (any, error) {
	m, ok := s.methods[name]
	if !ok {
		return nil, errors.New("E005").WithDetail("no method named " + name)
	}
	return m(s, args...)
}

// Has reports whether key is a data key, a method or a set field.
func (s *Store) Has(key string) bool {
	if _, ok := s.data[key]; ok {
		return true
	}
	if _, ok := s.methods[key]; ok {
		return true
	}
	_, ok := s.fields[key]
	return ok
}

// IsData reports whether key is a backing data key.
func (s *Store) IsData(key string) bool {
	_, ok := s.data[key]
	return ok
}

// Keys returns the data keys, sorted.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of the data without tracking any key.
func (s *Store) Snapshot() map[string]any {
	out := make(map[string]any, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}

// Track runs fn as a tracking pass and returns the distinct data keys it
// read, in first-read order. Passes nest: an inner pass records into its
// own set and the outer pass resumes afterwards.
func (s *Store) Track(fn func() error) (keys []string, err error) {
	old := s.pass
	pass := &trackingPass{seen: make(map[string]struct{})}
	s.pass = pass
	defer func() { s.pass = old }()

	err = fn()
	return pass.keys, err
}

// Tracking reports whether a tracking pass is active.
func (s *Store) Tracking() bool {
	return s.pass != nil
}

func (s *Store) bind(m Method) BoundMethod {
	return func(args ...any) (any, error) {
		return m(s, args...)
	}
}

// Value returns key's value as a T. ok is false when the value is missing
// or has another type.
func Value[T any](s *Store, key string) (T, bool) {
	v, ok := s.Get(key).(T)
	return v, ok
}
