package canonize_test

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/canonical/canonize"
	"github.com/katalvlaran/canonical/coloring"
	"github.com/katalvlaran/canonical/set"
)

// edgeGraph is a minimal Structure for driver tests: an undirected graph
// whose image is the textual rendering of its relabeled, sorted edge list.
type edgeGraph struct {
	n     int
	edges [][2]int
}

type edgeCache struct {
	adj    [][]int
	stack  []int
	counts set.Map[int]
}

func (g *edgeGraph) Elements() set.Ints { return set.Ints(g.n) }

func (g *edgeGraph) InitialColoring() set.Map[int] {
	return set.NewMap(set.Ints(g.n), func(int) int { return 0 })
}

func (g *edgeGraph) CompareColors(a, b int) int { return cmp.Compare(a, b) }

func (g *edgeGraph) InitializeCache() *edgeCache {
	adj := make([][]int, g.n)
	for _, e := range g.edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	for i := range adj {
		slices.Sort(adj[i])
		adj[i] = slices.Compact(adj[i])
	}

	return &edgeCache{
		adj:    adj,
		counts: set.NewMap(set.Ints(g.n), func(int) int { return 0 }),
	}
}

func (g *edgeGraph) RefineColoring(c *edgeCache, r *coloring.Reversible) {
	r.MakeEquitableWith(&c.stack, c.counts, func(x int) iter.Seq[int] {
		return slices.Values(c.adj[x])
	})
}

func (g *edgeGraph) ApplyMorphism(perm set.Map[int]) string {
	relabeled := make([][2]int, 0, len(g.edges))
	for _, e := range g.edges {
		u, v := perm.Get(e[0]), perm.Get(e[1])
		if u > v {
			u, v = v, u
		}
		relabeled = append(relabeled, [2]int{u, v})
	}
	slices.SortFunc(relabeled, func(a, b [2]int) int {
		if d := cmp.Compare(a[0], b[0]); d != 0 {
			return d
		}

		return cmp.Compare(a[1], b[1])
	})
	relabeled = slices.Compact(relabeled)

	var sb strings.Builder
	for _, e := range relabeled {
		fmt.Fprintf(&sb, "%d-%d;", e[0], e[1])
	}

	return sb.String()
}

func (g *edgeGraph) CompareImages(a, b string) int { return strings.Compare(a, b) }

// relabel returns the graph with vertices renamed through perm.
func (g *edgeGraph) relabel(perm []int) *edgeGraph {
	out := &edgeGraph{n: g.n}
	for _, e := range g.edges {
		out.edges = append(out.edges, [2]int{perm[e[0]], perm[e[1]]})
	}

	return out
}

func mustCanonize(t *testing.T, g *edgeGraph) *canonize.Result[string] {
	t.Helper()
	res, err := canonize.Canonize[int, *edgeCache, string](g)
	require.NoError(t, err)

	return res
}

func TestCanonize_NilStructure(t *testing.T) {
	res, err := canonize.Canonize[int, *edgeCache, string](nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, canonize.ErrStructureNil)
}

func TestCanonize_EmptyUniverse(t *testing.T) {
	res := mustCanonize(t, &edgeGraph{n: 0})
	assert.Equal(t, "", res.Image)
	assert.Empty(t, res.Permutation)
	assert.Equal(t, 1, res.Leaves)
}

func TestCanonize_SingleVertex(t *testing.T) {
	res := mustCanonize(t, &edgeGraph{n: 1})
	assert.Equal(t, "", res.Image)
	assert.Equal(t, set.Map[int]{0}, res.Permutation)
}

func TestCanonize_WitnessRealizesImage(t *testing.T) {
	g := &edgeGraph{n: 4, edges: [][2]int{{0, 1}, {1, 2}, {2, 3}}}
	res := mustCanonize(t, g)
	assert.Equal(t, res.Image, g.ApplyMorphism(res.Permutation))
}

func TestCanonize_Deterministic(t *testing.T) {
	g := &edgeGraph{n: 5, edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}}
	first := mustCanonize(t, g)
	second := mustCanonize(t, g)
	assert.Equal(t, first.Image, second.Image)
	assert.Equal(t, first.Permutation, second.Permutation)
	assert.Equal(t, first.Leaves, second.Leaves)
}

func TestCanonize_InvariantUnderRelabeling(t *testing.T) {
	g := &edgeGraph{n: 5, edges: [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}, {3, 4}}}
	want := mustCanonize(t, g).Image

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		res := mustCanonize(t, g.relabel(rng.Perm(g.n)))
		assert.Equal(t, want, res.Image, "relabeling %d changed the canonical image", i)
	}
}

// plainGraph is edgeGraph without the refinement hook: the search tree then
// enumerates every labeling, so the canonical image must equal the global
// minimum over S_n.
type plainGraph struct{ *edgeGraph }

func (plainGraph) RefineColoring(*edgeCache, *coloring.Reversible) {}

func TestCanonize_ImageIsMinimumOverAllLabelings(t *testing.T) {
	graphs := []*edgeGraph{
		{n: 3, edges: [][2]int{{0, 1}}},
		{n: 4, edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}},
		{n: 4, edges: [][2]int{{0, 1}, {0, 2}, {0, 3}}},
		{n: 5, edges: [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}}},
	}
	for _, g := range graphs {
		res, err := canonize.Canonize[int, *edgeCache, string](plainGraph{g})
		require.NoError(t, err)

		best := ""
		for i, p := range combin.Permutations(g.n, g.n) {
			img := g.ApplyMorphism(set.Map[int](p))
			if i == 0 || img < best {
				best = img
			}
			// Completeness of the minimum: no labeling beats the canon.
			assert.LessOrEqual(t, res.Image, img)
		}
		assert.Equal(t, best, res.Image)
	}
}

func TestCanonize_PrunesAutomorphicSubtrees(t *testing.T) {
	// The 4-cycle has 8 automorphisms; image collisions must prune, and
	// pruning must not lose the minimum.
	g := &edgeGraph{n: 4, edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}}
	res, err := canonize.Canonize[int, *edgeCache, string](plainGraph{g})
	require.NoError(t, err)
	assert.Positive(t, res.Pruned)

	best := ""
	for i, p := range combin.Permutations(4, 4) {
		img := g.ApplyMorphism(set.Map[int](p))
		if i == 0 || img < best {
			best = img
		}
	}
	assert.Equal(t, best, res.Image)
}

func TestCanonize_EdgelessGraphCollapsesToOneImage(t *testing.T) {
	res := mustCanonize(t, &edgeGraph{n: 3})
	assert.Equal(t, "", res.Image)
	// Every leaf yields the empty image; all but the first are collisions.
	assert.Equal(t, res.Leaves-1, res.Pruned)
}

func TestCanonize_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &edgeGraph{n: 3, edges: [][2]int{{0, 1}}}
	res, err := canonize.Canonize[int, *edgeCache, string](g, canonize.WithContext(ctx))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCanonize_NilContextKeepsBackground(t *testing.T) {
	g := &edgeGraph{n: 2, edges: [][2]int{{0, 1}}}
	res, err := canonize.Canonize[int, *edgeCache, string](g, canonize.WithContext(nil))
	require.NoError(t, err)
	assert.Equal(t, "0-1;", res.Image)
}
