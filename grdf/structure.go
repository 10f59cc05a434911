// Graph's implementation of the canonize.Structure capability.

package grdf

import (
	"iter"
	"slices"

	"github.com/katalvlaran/canonical/coloring"
	"github.com/katalvlaran/canonical/set"
)

// cache is the per-canonize scratch: the variable co-occurrence adjacency,
// plus the hoisted equitable-refinement worklist and count map.
type cache struct {
	neighbors [][]int
	stack     []int
	counts    set.Map[int]
}

// Elements identifies the permutable universe: the variable index set.
func (g *Graph[V]) Elements() set.Ints { return set.Ints(g.vars) }

// InitialColoring binds each variable to the sorted multiset of local
// shapes of the triples it occurs in. Relabeling variables permutes the
// bindings but never changes any shape, so the coloring is invariant under
// every automorphism.
func (g *Graph[V]) InitialColoring() set.Map[[]termColor[V]] {
	colors := make([][]termColor[V], g.vars)
	for _, t := range g.triples {
		colorTriple(colors, t)
	}
	for _, c := range colors {
		slices.SortFunc(c, termColor[V].compare)
	}

	return colors
}

// CompareColors orders shape multisets lexicographically.
func (g *Graph[V]) CompareColors(a, b []termColor[V]) int {
	return slices.CompareFunc(a, b, termColor[V].compare)
}

// InitializeCache precomputes the variable co-occurrence adjacency: two
// variables are neighbors when they fill distinct positions of a common
// triple. A variable filling two positions of one triple is its own
// neighbor, mirroring the pairwise-position rule.
func (g *Graph[V]) InitializeCache() *cache {
	neighbors := make([][]int, g.vars)
	for _, t := range g.triples {
		var vs []int
		for _, term := range [3]Term[V]{t.S, t.P, t.O} {
			if term.IsVar {
				vs = append(vs, term.Index)
			}
		}
		for i := 0; i < len(vs); i++ {
			for j := i + 1; j < len(vs); j++ {
				neighbors[vs[i]] = append(neighbors[vs[i]], vs[j])
				neighbors[vs[j]] = append(neighbors[vs[j]], vs[i])
			}
		}
	}

	// Deduplicate: equitable refinement counts distinct neighbors.
	for i, ns := range neighbors {
		slices.Sort(ns)
		neighbors[i] = slices.Compact(ns)
	}

	return &cache{
		neighbors: neighbors,
		counts:    set.NewMap(set.Ints(g.vars), func(int) int { return 0 }),
	}
}

// RefineColoring runs equitable refinement over the cached adjacency,
// reusing the cache's worklist and count map across passes.
func (g *Graph[V]) RefineColoring(c *cache, r *coloring.Reversible) {
	r.MakeEquitableWith(&c.stack, c.counts, func(x int) iter.Seq[int] {
		return slices.Values(c.neighbors[x])
	})
}

// ApplyMorphism returns the graph with every variable relabeled through
// perm. The result is sorted and deduplicated like any other Graph, so
// images of equal graphs under equal labelings compare equal.
func (g *Graph[V]) ApplyMorphism(perm set.Map[int]) *Graph[V] {
	out := &Graph[V]{vars: g.vars, triples: make([]Triple[V], 0, len(g.triples))}
	for _, t := range g.triples {
		out.insert(t.apply(perm))
	}

	return out
}

// CompareImages orders morphism images; the canonical form is the minimum.
func (g *Graph[V]) CompareImages(a, b *Graph[V]) int { return a.Compare(b) }
