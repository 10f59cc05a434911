// Package set models the finite indexed universe that every other package
// of the library is parameterized by: the ordered set {0, 1, …, n−1} and
// dense total maps over it.
//
// The two types are deliberately thin:
//
//   - Ints    — the universe itself, represented by its cardinality. Its
//     elements are the ints 0 ≤ i < n in their natural order.
//   - Map[V]  — a total map Ints → V, backed by a slice indexed by key, so
//     Get/Set are O(1) with no hashing.
//
// Colorings store a Map[int] reverse index, structures store Map[C] initial
// colorings, and the canonizer emits the witness permutation as a Map[int].
//
// Complexity:
//
//   - NewMap:    O(n) calls of the init function.
//   - Get / Set: O(1).
//   - Transform: O(n).
package set
