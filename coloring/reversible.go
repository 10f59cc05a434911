package coloring

import (
	"slices"

	"github.com/katalvlaran/canonical/set"
)

// debugChecks, when enabled, re-verifies the full set of structural
// invariants after every mutation. Off by default; tests switch it on via
// export_privates_for_test.go.
var debugChecks = false

// Reversible is a Coloring extended with a reverse index (element → cell
// index) and a nesting depth for scoped refinement.
//
// Every bound records the depth at which it was introduced. Begin opens a
// scope; Restore(k) closes k scopes by dropping every bound deeper than the
// restored depth, merging the affected cells back. Bounds of depth 0 form
// the initial partition and are never removed.
type Reversible struct {
	Coloring

	// reverse maps each element to the index of its cell. It agrees with
	// the embedded Coloring at all times.
	reverse set.Map[int]

	depth int
}

// NewReversible returns the reversible unit coloring of u at depth 0.
func NewReversible(u set.Ints) *Reversible {
	return FromColoring(u, Unit(u))
}

// FromColoring wraps a bare Coloring of u into a Reversible at depth 0.
// All bound depths are reset, so the given partition becomes the initial
// one. Panics if c does not partition u.
func FromColoring(u set.Ints, c Coloring) *Reversible {
	if len(c.elements) != u.Len() {
		panic(panicNotPartition)
	}
	c.resetBoundDepths()

	r := &Reversible{
		Coloring: c,
		reverse:  set.NewMap(u, func(int) int { return 0 }),
	}
	r.sweepReverse()
	r.assertInvariants()

	return r
}

// Depth returns the current nesting level of scoped refinements.
func (r *Reversible) Depth() int { return r.depth }

// Begin opens a new refinement scope. Every bound introduced until the
// matching Restore is tagged with the new depth.
func (r *Reversible) Begin() { r.depth++ }

// Restore closes k scopes: it drops every bound whose depth exceeds the
// restored depth, merging the affected cells back, then re-sorts cells and
// rebuilds the reverse index. Panics if k exceeds the current depth.
func (r *Reversible) Restore(k int) {
	if k < 0 || k > r.depth {
		panic(panicDepthUnderflow)
	}

	restored := r.depth - k
	r.retainBounds(func(b Bound) bool { return b.Depth <= restored })
	r.depth = restored
}

// ColorIndexOf returns the index of the cell containing x in O(1).
// Panics if x is outside the universe.
func (r *Reversible) ColorIndexOf(x int) int {
	if x < 0 || x >= r.reverse.Len() {
		panic(panicElementRange)
	}

	return r.reverse.Get(x)
}

// AsPermutation returns the permutation x ↦ cell-index-of-x represented by
// a discrete coloring, and true. If the coloring is not discrete it returns
// nil, false. The returned map is live: it is invalidated by any mutation;
// clone it to keep it.
func (r *Reversible) AsPermutation() (set.Map[int], bool) {
	if !r.IsDiscrete() {
		return nil, false
	}

	return r.reverse, true
}

// Individualize splits {x} off the front of its cell: x's cell [s,e)
// becomes [{x}, rest ascending]. The new bound is tagged with the current
// depth. Returns false (and does nothing) if x is already alone.
// Panics if x is outside the universe.
func (r *Reversible) Individualize(x int) bool {
	i := r.ColorIndexOf(x)
	s, e := r.cellRange(i)
	if e-s <= 1 {
		return false
	}

	// Swap x to the front, keep the remainder sorted.
	cell := r.elements[s:e]
	j, _ := slices.BinarySearch(cell, x)
	cell[0], cell[j] = cell[j], cell[0]
	slices.Sort(cell[1:])

	// Cut after x; the remainder becomes cell i+1.
	r.bounds = slices.Insert(r.bounds, i, Bound{Offset: s + 1, Depth: r.depth})
	r.reverse.Transform(func(t, c int) int {
		if c < i || t == x {
			return c
		}

		return c + 1
	})

	r.assertInvariants()

	return true
}

// Deindividualize undoes Individualize: if x is alone in cell i and i is
// not the last cell, the bound after {x} is removed and the two cells merge
// back. Returns false (and does nothing) otherwise. Depth is untouched.
func (r *Reversible) Deindividualize(x int) bool {
	i := r.ColorIndexOf(x)
	s, e := r.cellRange(i)
	if e-s != 1 || i >= len(r.bounds) {
		return false
	}

	r.bounds = slices.Delete(r.bounds, i, i+1)
	ms, me := r.cellRange(i)
	slices.Sort(r.elements[ms:me])
	r.reverse.Transform(func(_, c int) int {
		if c <= i {
			return c
		}

		return c - 1
	})

	r.assertInvariants()

	return true
}

// IsFinerOrEqual reports whether every cell of r is contained in a single
// cell of other, with cell order preserved. Both colorings must partition
// the same universe.
func (r *Reversible) IsFinerOrEqual(other *Reversible) bool {
	last := 0
	for _, cell := range r.Cells() {
		idx := other.ColorIndexOf(cell[0])
		if idx < last {
			return false
		}
		for _, x := range cell[1:] {
			if other.ColorIndexOf(x) != idx {
				return false
			}
		}
		last = idx
	}

	return true
}

// retainBounds removes every bound rejected by keep. When at least one
// bound was removed, the merged cells are re-sorted and the reverse index
// is rebuilt by a single sweep. Reports whether anything changed.
func (r *Reversible) retainBounds(keep func(Bound) bool) bool {
	oldLen := r.Len()
	r.bounds = slices.DeleteFunc(r.bounds, func(b Bound) bool { return !keep(b) })
	if r.Len() == oldLen {
		return false
	}

	r.sortCells()
	r.sweepReverse()
	r.assertInvariants()

	return true
}

// sweepReverse rebuilds the reverse index from the cells in one pass.
func (r *Reversible) sweepReverse() {
	for i, cell := range r.Cells() {
		for _, x := range cell {
			r.reverse.Set(x, i)
		}
	}
}

// check verifies the structural invariants: each cell sorted strictly
// ascending, and the reverse index agreeing with cell membership.
func (r *Reversible) check() bool {
	for i, cell := range r.Cells() {
		if len(cell) == 0 || !slices.IsSorted(cell) {
			return false
		}
		for _, x := range cell {
			if r.reverse.Get(x) != i {
				return false
			}
		}
	}

	return true
}

func (r *Reversible) assertInvariants() {
	if debugChecks && !r.check() {
		panic(panicInvariant)
	}
}
