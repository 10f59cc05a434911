package grdf

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Sentinel errors for gRDF graph construction and canonization.
var (
	// ErrGraphNil indicates a nil *Graph was passed to Canonize or
	// Isomorphic.
	ErrGraphNil = errors.New("grdf: graph is nil")

	// ErrVarOutOfRange indicates a triple names Var(i) with i < 0 or
	// i ≥ Vars().
	ErrVarOutOfRange = errors.New("grdf: variable index out of range")

	// ErrNegativeVars indicates a negative variable count.
	ErrNegativeVars = errors.New("grdf: negative variable count")
)

// Graph is a gRDF graph: a set of triples over the variables
// {0, …, vars−1} plus arbitrary ground values. Triples are held sorted and
// deduplicated, so two Graphs with equal content compare equal regardless
// of insertion order.
type Graph[V cmp.Ordered] struct {
	vars    int
	triples []Triple[V]
}

// New builds a graph over vars variables holding the given triples.
// Duplicate triples collapse. Variables named by the triples must lie in
// [0, vars).
func New[V cmp.Ordered](vars int, triples ...Triple[V]) (*Graph[V], error) {
	if vars < 0 {
		return nil, fmt.Errorf("grdf: vars=%d: %w", vars, ErrNegativeVars)
	}

	g := &Graph[V]{vars: vars}
	for _, t := range triples {
		if err := g.Insert(t); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Insert adds one triple, keeping the set sorted and deduplicated.
func (g *Graph[V]) Insert(t Triple[V]) error {
	for _, term := range [3]Term[V]{t.S, t.P, t.O} {
		if term.IsVar && (term.Index < 0 || term.Index >= g.vars) {
			return fmt.Errorf("grdf: %s in %s with vars=%d: %w", term, t, g.vars, ErrVarOutOfRange)
		}
	}
	g.insert(t)

	return nil
}

// insert is Insert without the range check, for internally produced
// triples.
func (g *Graph[V]) insert(t Triple[V]) {
	i, found := slices.BinarySearchFunc(g.triples, t, Triple[V].Compare)
	if !found {
		g.triples = slices.Insert(g.triples, i, t)
	}
}

// Vars returns the number of variables the graph is scoped over.
func (g *Graph[V]) Vars() int { return g.vars }

// Len returns the number of distinct triples.
func (g *Graph[V]) Len() int { return len(g.triples) }

// Triples iterates over the triples in sorted order.
func (g *Graph[V]) Triples() iter.Seq[Triple[V]] {
	return slices.Values(g.triples)
}

// Compare is the total order on graphs: triple sets lexicographically,
// variable count as tiebreak.
func (g *Graph[V]) Compare(other *Graph[V]) int {
	if d := slices.CompareFunc(g.triples, other.triples, Triple[V].Compare); d != 0 {
		return d
	}

	return cmp.Compare(g.vars, other.vars)
}

// Equal reports whether the two graphs hold the same triples over the same
// variable count.
func (g *Graph[V]) Equal(other *Graph[V]) bool { return g.Compare(other) == 0 }

// String renders "{(?0 ?1 ?2), (a ?1 b)}".
func (g *Graph[V]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, t := range g.triples {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.String())
	}
	sb.WriteByte('}')

	return sb.String()
}
