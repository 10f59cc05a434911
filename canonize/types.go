// Types, options, and sentinel errors for the canonicalization driver.

package canonize

import (
	"context"
	"errors"

	"github.com/katalvlaran/canonical/coloring"
	"github.com/katalvlaran/canonical/set"
)

// ErrStructureNil is returned when a nil Structure is passed to Canonize.
var ErrStructureNil = errors.New("canonize: structure is nil")

// panicNonDiscreteLeaf reports a broken refinement hook: a search leaf must
// carry a discrete coloring.
const panicNonDiscreteLeaf = "canonize: leaf coloring is not discrete"

// Structure is the capability a canonizable structure supplies. C is the
// initial color type, K the per-call cache type, M the image type.
//
// The three semantic operations (InitialColoring, RefineColoring,
// ApplyMorphism) must be deterministic and isomorphism-equivariant; the
// compare methods must implement total orders. Since Go cannot constrain an
// arbitrary type parameter to be ordered, the orders on C and M travel with
// the structure as CompareColors and CompareImages.
type Structure[C, K, M any] interface {
	// Elements identifies the permutable universe.
	Elements() set.Ints

	// InitialColoring binds each element to a color invariant under every
	// automorphism of the structure.
	InitialColoring() set.Map[C]

	// CompareColors is the total order on initial colors.
	CompareColors(a, b C) int

	// InitializeCache runs one-time precomputation (adjacency lists,
	// hoisted refinement scratch) for a single canonize call.
	InitializeCache() K

	// RefineColoring may split cells of r using any information invariant
	// under automorphisms of the structure. It is invoked once on the root
	// coloring and after every individualization.
	RefineColoring(cache K, r *coloring.Reversible)

	// ApplyMorphism produces the image of the structure under the labeling
	// perm. Applying perm and then its inverse must give back the original.
	ApplyMorphism(perm set.Map[int]) M

	// CompareImages is the total order on images; the canonical form is its
	// minimum over all visited leaves.
	CompareImages(a, b M) int
}

// Option configures optional behavior of Canonize.
// Use with Canonize(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for a canonize call.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is consulted between leaf advances, so cancellation is cooperative
	// with leaf granularity.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext returns an Option that sets the context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result captures the outcome of a canonize call.
type Result[M any] struct {
	// Image is the canonical form: the minimum image over all leaves.
	Image M

	// Permutation is a witness labeling realizing Image:
	// ApplyMorphism(Permutation) equals Image.
	Permutation set.Map[int]

	// Leaves counts the search-tree leaves actually visited.
	Leaves int

	// Pruned counts the subtrees skipped thanks to automorphism detection.
	Pruned int
}
