package coloring

import (
	"cmp"
	"slices"
)

// Refine splits every cell of r independently by key: within each existing
// cell, members are partitioned by their key value and the resulting
// sub-cells are ordered by key. New bounds are tagged with the current
// depth. Reports whether the number of cells strictly increased.
func Refine[K cmp.Ordered](r *Reversible, key func(x int) K) bool {
	var touched []int

	return RefineWith(r, &touched, key)
}

// RefineWith is Refine with worklist bookkeeping. When a cell splits into
// sub-cells at new indices j₀ < … < jₘ, the indices j₀ … jₘ₋₁ are appended
// to touched as they are created. Then, for every cell whose index changed
// (by splitting, or by being displaced past earlier splits) the final
// index (jₘ for a split cell, the shifted index otherwise) overwrites a
// pre-existing touched entry equal to the cell's old index if there is one,
// and is appended otherwise.
//
// MakeEquitableWith feeds its worklist through here; the exact update rule
// above is what makes the refinement order, and with it the canonical form,
// deterministic.
func RefineWith[K cmp.Ordered](r *Reversible, touched *[]int, key func(x int) K) bool {
	alreadyLen := len(*touched)
	oldLen := r.Len()

	// Rebuild the bound list from scratch: old bounds are re-appended in
	// order, interleaved with the new split bounds of each cell.
	oldBounds := r.bounds
	r.bounds = make([]Bound, 0, len(oldBounds))

	start, oldIdx, newIdx := 0, 0, 0
	for _, end := range oldBounds {
		newIdx = refineCell(r, touched, alreadyLen, key, start, end.Offset, oldIdx, newIdx)
		r.bounds = append(r.bounds, end)
		oldIdx++
		newIdx++
		start = end.Offset
	}
	refineCell(r, touched, alreadyLen, key, start, len(r.elements), oldIdx, newIdx)

	r.sortCells()
	r.assertInvariants()

	return r.Len() != oldLen
}

// refineCell splits the single cell occupying elements[start:end]. oldIdx
// is the cell's index before this refinement pass, newIdx the index its
// first sub-cell receives; the index of the cell's last sub-cell is
// returned. The reverse index is updated incrementally as bounds are laid
// down.
func refineCell[K cmp.Ordered](
	r *Reversible,
	touched *[]int,
	alreadyLen int,
	key func(x int) K,
	start, end, oldIdx, newIdx int,
) int {
	seg := r.elements[start:end]
	if len(seg) == 0 {
		return newIdx
	}
	slices.SortFunc(seg, func(a, b int) int { return cmp.Compare(key(a), key(b)) })

	r.reverse.Set(seg[0], newIdx)
	for i := 1; i < len(seg); i++ {
		if key(seg[i-1]) != key(seg[i]) {
			*touched = append(*touched, newIdx)
			newIdx++
			r.bounds = append(r.bounds, Bound{Offset: start + i, Depth: r.depth})
		}
		r.reverse.Set(seg[i], newIdx)
	}

	// The cell split, or was displaced by an earlier split: record its
	// final index, overwriting a stale worklist entry for the old index
	// when present.
	if oldIdx != newIdx {
		present := false
		for j := 0; j < alreadyLen; j++ {
			if (*touched)[j] == oldIdx {
				(*touched)[j] = newIdx
				present = true

				break
			}
		}
		if !present {
			*touched = append(*touched, newIdx)
		}
	}

	return newIdx
}
