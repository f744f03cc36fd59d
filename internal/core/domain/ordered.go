package domain

import "slices"

// OrderedMap is a map that remembers insertion order.
// Re-setting an existing key keeps its original position.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{values: make(map[K]V)}
}

// Set stores v under k.
func (m *OrderedMap[K, V]) Set(k K, v V) {
	if _, ok := m.values[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

// Get returns the value stored under k.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

// Has reports whether k is present.
func (m *OrderedMap[K, V]) Has(k K) bool {
	_, ok := m.values[k]
	return ok
}

// Delete removes k. Deleting a missing key is a no-op.
func (m *OrderedMap[K, V]) Delete(k K) {
	if _, ok := m.values[k]; !ok {
		return
	}
	delete(m.values, k)
	m.keys = slices.DeleteFunc(m.keys, func(x K) bool { return x == k })
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// At returns the i-th entry in insertion order.
func (m *OrderedMap[K, V]) At(i int) (K, V) {
	k := m.keys[i]
	return k, m.values[k]
}

// Keys returns a copy of the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Merge copies every entry of other into m.
func (m *OrderedMap[K, V]) Merge(other *OrderedMap[K, V]) {
	for _, k := range other.keys {
		m.Set(k, other.values[k])
	}
}

// Clear removes all entries.
func (m *OrderedMap[K, V]) Clear() {
	m.keys = nil
	m.values = make(map[K]V)
}

// OrderedSet is a set that remembers insertion order.
type OrderedSet[K comparable] struct {
	m *OrderedMap[K, struct{}]
}

// NewOrderedSet creates a set holding items in order.
func NewOrderedSet[K comparable](items ...K) *OrderedSet[K] {
	s := &OrderedSet[K]{m: NewOrderedMap[K, struct{}]()}
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// Add inserts k; adding an existing element is a no-op.
func (s *OrderedSet[K]) Add(k K) {
	s.m.Set(k, struct{}{})
}

// Has reports whether k is in the set.
func (s *OrderedSet[K]) Has(k K) bool {
	return s.m.Has(k)
}

// Delete removes k.
func (s *OrderedSet[K]) Delete(k K) {
	s.m.Delete(k)
}

// Len returns the number of elements.
func (s *OrderedSet[K]) Len() int {
	return s.m.Len()
}

// Items returns the elements in insertion order.
func (s *OrderedSet[K]) Items() []K {
	return s.m.Keys()
}

// Clear removes all elements.
func (s *OrderedSet[K]) Clear() {
	s.m.Clear()
}
