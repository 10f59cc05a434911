// Package coloring implements ordered partitions ("colorings") of a finite
// indexed universe, and their reversible, depth-scoped refinement: the
// central data structure of the canonicalization search.
//
// Key types:
//
//   - Coloring   — an ordered partition: a permutation of the universe laid
//     out contiguously, cut into cells by a list of bound offsets. Cells are
//     kept sorted ascending at all times.
//   - Reversible — a Coloring plus a reverse index (element → cell index in
//     O(1)) and a nesting depth. Every bound carries the depth at which it
//     was introduced, so Restore(k) can drop all bounds of a deeper scope
//     and merge the affected cells back without ever copying the partition.
//
// Core operations:
//
//   - Individualize(x)/Deindividualize(x): split {x} off the front of its
//     cell, and the exact inverse.
//   - Refine / RefineWith: split every cell independently by a key function,
//     with a worklist discipline that records the freshly created cells.
//   - MakeEquitable: 1-dimensional Weisfeiler–Leman refinement against a
//     neighbor relation, run to fixpoint.
//   - Begin / Restore: open a refinement scope, and undo every split made
//     inside it in O(bounds removed) + one re-sort/sweep.
//
// Determinism: the worklist update rule in RefineWith (new sub-cell indices
// are appended, except the last one, which overwrites a pre-existing
// worklist entry for the split cell if there is one and is appended
// otherwise; a cell displaced by an earlier split is recorded the same way)
// and the LIFO pop order in MakeEquitable are fixed; canonical forms depend
// on both.
//
// Errors: misuse (an element outside the universe, restoring below depth
// zero, scratch of the wrong size) is a programmer error and panics with a
// "coloring: …" diagnostic. No operation returns an error.
//
// Complexity:
//
//   - Construction:      O(n log n)
//   - Cell access:       O(1)
//   - Individualize:     O(cell log cell) for the re-sort, O(n) reverse fixup
//   - RefineWith:        O(n log n) per pass
//   - Restore:           O(bounds removed) + O(n log n) re-sort + O(n) sweep
package coloring
