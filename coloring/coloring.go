package coloring

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/katalvlaran/canonical/set"
)

// Panic diagnostics for programmer errors (see package doc).
const (
	panicElementRange   = "coloring: element outside the universe"
	panicDepthUnderflow = "coloring: restore below depth zero"
	panicScratchSize    = "coloring: map does not cover the universe"
	panicNotPartition   = "coloring: elements are not a permutation of the universe"
	panicInvariant      = "coloring: internal invariant violated"
)

// Bound is one cut in a coloring: the half-open cell boundary at Offset,
// introduced at nesting level Depth. Two bounds are considered equal when
// their offsets are equal; Depth is bookkeeping for scoped restore only.
type Bound struct {
	// Offset is the index in the element layout at which a new cell starts.
	Offset int

	// Depth is the Reversible nesting level that introduced this bound.
	// Bounds of depth 0 belong to the initial partition and survive Restore.
	Depth int
}

// Coloring is an ordered partition of the universe {0,…,n−1}.
//
// The elements slice is a permutation of the universe, ordered by cell
// first and ascending within each cell. The bounds slice holds strictly
// increasing cut offsets; cells are the ranges between consecutive cuts.
type Coloring struct {
	elements []int
	bounds   []Bound
}

// Unit returns the one-cell partition of u, elements ascending.
func Unit(u set.Ints) Coloring {
	elements := make([]int, u.Len())
	for i := range elements {
		elements[i] = i
	}

	return Coloring{elements: elements}
}

// FromMap builds the coloring whose cells are the equivalence classes of
// the colors map, ordered by color under compare; elements of equal color
// are sorted ascending within their cell.
func FromMap[C any](u set.Ints, colors set.Map[C], compare func(a, b C) int) Coloring {
	if colors.Len() != u.Len() {
		panic(panicScratchSize)
	}

	c := Unit(u)

	// Order by color first, element second: this yields sorted cells directly.
	slices.SortFunc(c.elements, func(a, b int) int {
		if d := compare(colors.Get(a), colors.Get(b)); d != 0 {
			return d
		}

		return cmp.Compare(a, b)
	})

	// Cut wherever two adjacent elements disagree on color.
	for i := 1; i < len(c.elements); i++ {
		if compare(colors.Get(c.elements[i-1]), colors.Get(c.elements[i])) != 0 {
			c.bounds = append(c.bounds, Bound{Offset: i})
		}
	}

	return c
}

// FromOrdered is FromMap for naturally ordered color types.
func FromOrdered[C cmp.Ordered](u set.Ints, colors set.Map[C]) Coloring {
	return FromMap(u, colors, cmp.Compare[C])
}

// Len returns the number of cells.
func (c *Coloring) Len() int { return len(c.bounds) + 1 }

// IsUnit reports whether the coloring has a single cell.
func (c *Coloring) IsUnit() bool { return len(c.bounds) == 0 }

// IsDiscrete reports whether every cell is a singleton.
func (c *Coloring) IsDiscrete() bool { return c.Len() == len(c.elements) }

// cellRange returns the half-open element range [s, e) of cell i.
// The caller guarantees 0 ≤ i < Len().
func (c *Coloring) cellRange(i int) (s, e int) {
	if i > 0 {
		s = c.bounds[i-1].Offset
	}
	if i < len(c.bounds) {
		return s, c.bounds[i].Offset
	}

	return s, len(c.elements)
}

// Cell returns the i-th cell as a view into the element layout, or nil if
// i is out of range. The view is invalidated by any mutation.
func (c *Coloring) Cell(i int) []int {
	if i < 0 || i >= c.Len() {
		return nil
	}
	s, e := c.cellRange(i)

	return c.elements[s:e]
}

// Cells iterates over (cell index, cell) pairs in order.
func (c *Coloring) Cells() iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		start := 0
		for i, b := range c.bounds {
			if !yield(i, c.elements[start:b.Offset]) {
				return
			}
			start = b.Offset
		}
		yield(len(c.bounds), c.elements[start:])
	}
}

// ColorIndexOf returns the index of the cell containing x by linear scan,
// or false if x is not in the universe. Reversible provides the O(1) form;
// this fallback exists for bare Colorings only.
func (c *Coloring) ColorIndexOf(x int) (int, bool) {
	for i, cell := range c.Cells() {
		if _, ok := slices.BinarySearch(cell, x); ok {
			return i, true
		}
	}

	return 0, false
}

// Equal reports whether the two colorings have identical cells in identical
// order. Bound depths are ignored.
func (c *Coloring) Equal(other *Coloring) bool {
	if !slices.Equal(c.elements, other.elements) || len(c.bounds) != len(other.bounds) {
		return false
	}
	for i, b := range c.bounds {
		if b.Offset != other.bounds[i].Offset {
			return false
		}
	}

	return true
}

// String renders the coloring as "{[0 1], [2]}" for diagnostics.
func (c *Coloring) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, cell := range c.Cells() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", cell)
	}
	sb.WriteByte('}')

	return sb.String()
}

// sortCells restores the ascending-within-cell invariant. Called after any
// operation that may have disturbed it.
func (c *Coloring) sortCells() {
	start := 0
	for _, b := range c.bounds {
		slices.Sort(c.elements[start:b.Offset])
		start = b.Offset
	}
	slices.Sort(c.elements[start:])
}

// resetBoundDepths zeroes every bound depth, turning the current partition
// into the initial one (used when wrapping a bare Coloring).
func (c *Coloring) resetBoundDepths() {
	for i := range c.bounds {
		c.bounds[i].Depth = 0
	}
}
