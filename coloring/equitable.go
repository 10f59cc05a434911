package coloring

import (
	"iter"

	"github.com/katalvlaran/canonical/set"
)

// MakeEquitable refines r to an equitable partition with respect to the
// neighbors relation: afterwards, any two elements sharing a cell have the
// same number of neighbors in every cell (1-dimensional Weisfeiler–Leman).
//
// Scratch (worklist and count map) is allocated per call; hot paths should
// hoist it and use MakeEquitableWith instead.
func (r *Reversible) MakeEquitable(neighbors func(x int) iter.Seq[int]) {
	stack := make([]int, 0, r.Len())
	counts := set.NewMap(set.Ints(r.reverse.Len()), func(int) int { return 0 })

	r.MakeEquitableWith(&stack, counts, neighbors)
}

// MakeEquitableWith is MakeEquitable with caller-supplied scratch: stack is
// the cell worklist, counts a total map over the universe. Both are reused
// across calls without reallocation; stack is empty on return.
//
// The worklist starts holding every cell and is popped LIFO. For each
// popped cell c, every element is keyed by its number of neighbors inside
// c, and RefineWith pushes the freshly split cells back onto the worklist.
// The loop ends when the worklist drains or the coloring turns discrete.
//
// Panics if counts does not cover the universe.
func (r *Reversible) MakeEquitableWith(stack *[]int, counts set.Map[int], neighbors func(x int) iter.Seq[int]) {
	if counts.Len() != r.reverse.Len() {
		panic(panicScratchSize)
	}

	*stack = (*stack)[:0]
	for i := 0; i < r.Len(); i++ {
		*stack = append(*stack, i)
	}

	for len(*stack) > 0 && !r.IsDiscrete() {
		// Pop the most recently split cell first.
		cell := (*stack)[len(*stack)-1]
		*stack = (*stack)[:len(*stack)-1]

		// Count, for every element, its neighbors inside the popped cell.
		counts.Transform(func(x, _ int) int {
			n := 0
			for y := range neighbors(x) {
				if r.reverse.Get(y) == cell {
					n++
				}
			}

			return n
		})

		RefineWith(r, stack, counts.Get)
	}

	*stack = (*stack)[:0]
}
