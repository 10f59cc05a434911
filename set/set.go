package set

import (
	"iter"
	"slices"
)

// Ints is the finite ordered universe {0, 1, …, n−1}, represented by its
// cardinality n. The zero value is the empty universe.
type Ints int

// Len returns the number of elements in the universe.
func (u Ints) Len() int { return int(u) }

// Contains reports whether x is an element of the universe.
func (u Ints) Contains(x int) bool { return x >= 0 && x < int(u) }

// All iterates over the elements of the universe in ascending order,
// yielding each exactly once.
func (u Ints) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < int(u); i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Map is a dense total map from universe elements to values of type V.
// Index k holds the value bound to element k.
type Map[V any] []V

// NewMap builds a total map over u, binding each element k to init(k).
func NewMap[V any](u Ints, init func(k int) V) Map[V] {
	m := make(Map[V], u.Len())
	for k := range m {
		m[k] = init(k)
	}

	return m
}

// Len returns the number of entries in the map, which equals the
// cardinality of the universe it was built over.
func (m Map[V]) Len() int { return len(m) }

// Get returns the value bound to key k.
func (m Map[V]) Get(k int) V { return m[k] }

// Set binds key k to value v.
func (m Map[V]) Set(k int, v V) { m[k] = v }

// Transform rewrites every entry in place, binding each key k to g(k, v)
// where v is the current value.
func (m Map[V]) Transform(g func(k int, v V) V) {
	for k := range m {
		m[k] = g(k, m[k])
	}
}

// Clone returns an independent copy of the map.
func (m Map[V]) Clone() Map[V] { return slices.Clone(m) }
