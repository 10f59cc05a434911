// The canonicalization driver: DFS over the individualization tree, image
// interning, automorphism pruning, minimum selection.

package canonize

import (
	"slices"

	"github.com/katalvlaran/canonical/coloring"
	"github.com/katalvlaran/canonical/set"
)

// Canonize computes the canonical form of g: the minimum image over all
// leaves of the individualization/refinement tree, plus a witness
// permutation realizing it. Isomorphic structures (structures equal up to a
// relabeling of their universe) yield equal canonical images.
//
// Returns ErrStructureNil if g is nil, or the context's error if a
// WithContext context ends mid-search. On error the partial search state is
// discarded.
func Canonize[C, K, M any](g Structure[C, K, M], opts ...Option) (*Result[M], error) {
	// 1. Validate input structure.
	if g == nil {
		return nil, ErrStructureNil
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. One-time precomputation and universe discovery.
	cache := g.InitializeCache()
	u := g.Elements()
	res := &Result[M]{}

	// Empty universe: a single empty labeling, nothing to search.
	if u.Len() == 0 {
		perm := set.Map[int]{}
		res.Image = g.ApplyMorphism(perm)
		res.Permutation = perm
		res.Leaves = 1

		return res, nil
	}

	// 4. Root coloring: the structure's initial colors, wrapped reversible
	// at depth 0 and refined once.
	refine := func(r *coloring.Reversible) { g.RefineColoring(cache, r) }
	root := coloring.FromColoring(u, coloring.FromMap(u, g.InitialColoring(), g.CompareColors))
	refine(root)

	// 5. Descend to the leftmost leaf.
	n := newRoot(root)
	n.intoFirstChildLeaf(refine)

	// 6. Walk the leaves in DFS order, interning images.
	images := imageMap[M]{compare: g.CompareImages}
	for {
		// Cooperative cancellation, once per leaf.
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}

		perm, ok := n.col.AsPermutation()
		if !ok {
			panic(panicNonDiscreteLeaf)
		}
		img := g.ApplyMorphism(perm)

		if at, found := images.search(img); found {
			// Automorphism pruning. An image collision witnesses an
			// automorphism mapping this leaf's path onto the stored one, so
			// every leaf still ahead below the paths' divergence maps to an
			// image already interned. Back out to one step below the common
			// ancestor; the next-leaf step then pops to the ancestor and
			// advances to its next sibling.
			prefix := longestCommonPrefixLen(n.path, images.entries[at].path)
			n.restore(len(n.path) - prefix - 1)
			res.Pruned++
		} else {
			images.insertAt(at, img, slices.Clone(n.path), perm.Clone())
		}
		res.Leaves++

		if !n.intoNextLeaf(refine) {
			break
		}
	}

	// 7. The minimum interned image is the canonical form.
	best := images.min()
	res.Image = best.image
	res.Permutation = best.perm

	return res, nil
}

// longestCommonPrefixLen returns the length of the longest common prefix of
// a and b.
func longestCommonPrefixLen(a, b []int) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}

	return n
}
