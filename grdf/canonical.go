// Entry points: canonization and isomorphism testing for gRDF graphs.

package grdf

import (
	"cmp"

	"github.com/katalvlaran/canonical/canonize"
)

// Graph must satisfy the canonizer's capability contract.
var _ canonize.Structure[[]termColor[int], *cache, *Graph[int]] = (*Graph[int])(nil)

// Canonize computes the canonical form of g under variable relabeling: a
// representative of g's isomorphism class plus a witness relabeling
// realizing it. Two graphs are isomorphic iff their canonical images are
// Equal.
//
// Returns ErrGraphNil if g is nil; context errors propagate from
// canonize.WithContext.
func Canonize[V cmp.Ordered](g *Graph[V], opts ...canonize.Option) (*canonize.Result[*Graph[V]], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return canonize.Canonize[[]termColor[V], *cache, *Graph[V]](g, opts...)
}

// Isomorphic reports whether a and b are equal up to variable relabeling.
// Returns ErrGraphNil if either graph is nil.
func Isomorphic[V cmp.Ordered](a, b *Graph[V], opts ...canonize.Option) (bool, error) {
	if a == nil || b == nil {
		return false, ErrGraphNil
	}

	// Relabeling is a bijection: counts must already agree.
	if a.vars != b.vars || a.Len() != b.Len() {
		return false, nil
	}

	ra, err := Canonize(a, opts...)
	if err != nil {
		return false, err
	}
	rb, err := Canonize(b, opts...)
	if err != nil {
		return false, err
	}

	return ra.Image.Equal(rb.Image), nil
}
