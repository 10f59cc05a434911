package canonize

import (
	"slices"

	"github.com/katalvlaran/canonical/coloring"
)

// refineFunc is the structure-dependent refinement hook threaded through
// every descent step.
type refineFunc func(*coloring.Reversible)

// node is a position in the individualization tree: the coloring reached so
// far plus the path of individualization choices that produced it from the
// root. len(path) always equals the coloring depth.
type node struct {
	path []int
	col  *coloring.Reversible
}

// newRoot wraps a depth-0 coloring as the tree root.
func newRoot(r *coloring.Reversible) *node {
	return &node{col: r}
}

// childrenCell returns the target cell of this node: the first
// non-singleton cell by index, or nil if the coloring is discrete (the node
// is a leaf). The selector is fixed; see the package documentation.
func (n *node) childrenCell() []int {
	for _, cell := range n.col.Cells() {
		if len(cell) > 1 {
			return cell
		}
	}

	return nil
}

// individualize descends one step: open a scope, split {x} off, run the
// refinement hook, record the choice.
func (n *node) individualize(x int, refine refineFunc) {
	n.col.Begin()
	n.col.Individualize(x)
	refine(n.col)
	n.path = append(n.path, x)
}

// restore ascends k steps, undoing the corresponding individualizations
// and refinements.
func (n *node) restore(k int) {
	n.col.Restore(k)
	n.path = n.path[:len(n.path)-k]
}

// intoFirstChildLeaf descends to the leftmost leaf below the current node,
// always individualizing the minimum element of the target cell.
func (n *node) intoFirstChildLeaf(refine refineFunc) {
	for cell := n.childrenCell(); cell != nil; cell = n.childrenCell() {
		n.individualize(cell[0], refine)
	}
}

// intoNextLeaf advances to the next leaf in DFS order: ascend one step,
// move to the next sibling of the popped choice if its cell has one, and
// descend back to a leaf. When a cell is exhausted the ascent continues;
// when the path empties the walk is over and false is returned.
//
// Cells stay sorted ascending, so the popped element's position, and with
// it the next sibling, is found by binary search. Leaves are therefore
// enumerated in lexicographic path order.
func (n *node) intoNextLeaf(refine refineFunc) bool {
	for len(n.path) > 0 {
		last := n.path[len(n.path)-1]
		n.path = n.path[:len(n.path)-1]
		n.col.Restore(1) // undo individualization and refinement

		cell := n.col.Cell(n.col.ColorIndexOf(last))
		j, _ := slices.BinarySearch(cell, last)
		if j+1 < len(cell) {
			n.individualize(cell[j+1], refine)
			n.intoFirstChildLeaf(refine)

			return true
		}
	}

	return false
}
