// Package attributes implements the attribute pipeline behind a remote
// model: raw storage, declared casts, registered mutators and the
// hidden/visible projection rules.
package attributes

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Store holds one entity's raw attribute state in insertion order. A stored
// nil is distinct from an absent key. Store never applies casts or mutators;
// that interception belongs to Schema.
type Store struct {
	m *linkedhashmap.Map
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{m: linkedhashmap.New()}
}

// Get returns the raw value for key. The second return is false when the key
// was never stored.
func (s *Store) Get(key string) (any, bool) {
	return s.m.Get(key)
}

// Set stores value under key. Re-setting an existing key keeps its original
// position.
func (s *Store) Set(key string, value any) {
	s.m.Put(key, value)
}

// Has reports whether key is stored, even with a nil value.
func (s *Store) Has(key string) bool {
	_, ok := s.m.Get(key)
	return ok
}

// Remove drops key from the store.
func (s *Store) Remove(key string) {
	s.m.Remove(key)
}

// Len returns the number of stored attributes.
func (s *Store) Len() int {
	return s.m.Size()
}

// Keys returns the attribute names in insertion order.
func (s *Store) Keys() []string {
	raw := s.m.Keys()
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, k.(string))
	}
	return keys
}

// All returns a plain copy of the raw attribute map.
func (s *Store) All() map[string]any {
	out := make(map[string]any, s.m.Size())
	for _, k := range s.Keys() {
		v, _ := s.m.Get(k)
		out[k] = v
	}
	return out
}

// Snapshot returns an independent copy of the store. Values are shared, the
// ordering and membership are not.
func (s *Store) Snapshot() *Store {
	cp := NewStore()
	for _, k := range s.Keys() {
		v, _ := s.m.Get(k)
		cp.m.Put(k, v)
	}
	return cp
}
