// Export of selected internals for white-box assertions from the _test
// package. Test-only surface; not part of the public API.

package canonize

import "github.com/katalvlaran/canonical/coloring"

// Node aliases the internal search-tree node for navigation tests.
type Node = node

// NewRootNode wraps a depth-0 reversible coloring as a tree root.
func NewRootNode(r *coloring.Reversible) *Node { return newRoot(r) }

// Path returns the node's individualization path.
func (n *node) Path() []int { return n.path }

// Coloring returns the node's reversible coloring.
func (n *node) Coloring() *coloring.Reversible { return n.col }

// ChildrenCell exposes the target-cell selector.
func (n *node) ChildrenCell() []int { return n.childrenCell() }

// IntoFirstChildLeaf descends to the leftmost leaf.
func (n *node) IntoFirstChildLeaf(refine func(*coloring.Reversible)) {
	n.intoFirstChildLeaf(refine)
}

// IntoNextLeaf advances to the next DFS leaf, reporting false on exhaustion.
func (n *node) IntoNextLeaf(refine func(*coloring.Reversible)) bool {
	return n.intoNextLeaf(refine)
}

// RestoreSteps ascends k tree levels.
func (n *node) RestoreSteps(k int) { n.restore(k) }

// ExportLongestCommonPrefixLen exposes the path-prefix helper.
func ExportLongestCommonPrefixLen(a, b []int) int { return longestCommonPrefixLen(a, b) }
