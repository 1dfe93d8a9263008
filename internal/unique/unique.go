// Package unique is a typed attachment registry keyed by native
// allocation addresses: at most one value per Go type per key.
// Entries are removed synchronously when the owning native object is
// torn down, before the allocator can hand the address out again, so
// a recycled key always starts clean.
package unique

import (
	"reflect"
	"sync"
)

// Store maps keys to their typed attachments. Use NewStore.
type Store struct {
	mu    sync.Mutex
	byKey map[uintptr]map[reflect.Type]any
}

func NewStore() *Store {
	return &Store{byKey: map[uintptr]map[reflect.Type]any{}}
}

// Attach stores v under its dynamic type, replacing any previous
// value of that type. It reports whether this was the key's first
// attachment, so the caller can hook teardown exactly once per key.
func (s *Store) Attach(key uintptr, v any) (first bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.byKey[key]
	if !ok {
		slot = map[reflect.Type]any{}
		s.byKey[key] = slot
	}
	slot[reflect.TypeOf(v)] = v
	return !ok
}

// Lookup returns the attachment of type t under key, if any.
func (s *Store) Lookup(key uintptr, t reflect.Type) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.byKey[key]
	if !ok {
		return nil, false
	}
	v, ok := slot[t]
	return v, ok
}

// Drop forgets every attachment under key.
func (s *Store) Drop(key uintptr) {
	s.mu.Lock()
	delete(s.byKey, key)
	s.mu.Unlock()
}
