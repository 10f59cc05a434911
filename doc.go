// Package canonical computes canonical forms for structures whose identity
// is defined up to a permutation of an indexed element set: the archetypal
// case being graphs up to vertex relabeling, and gRDF graphs under
// blank-node relabeling in particular.
//
// 🚀 What is canonical?
//
//	A small, focused partition-refinement search engine:
//
//	  • set/      — the finite indexed universe {0,…,n−1} and dense total maps
//	  • coloring/ — ordered partitions with depth-tagged bounds, supporting
//	                scoped individualize / refine / restore and equitable
//	                refinement (1-dimensional Weisfeiler–Leman)
//	  • canonize/ — the individualization/refinement/backtracking search
//	                tree, automorphism pruning, and minimum-image selection
//	  • grdf/     — generalized-RDF graphs as the worked example structure
//
// Two structures are isomorphic if and only if their canonical images are
// equal, which makes the library the foundation for isomorphism testing,
// deduplication, hashing, and indexed lookup of relabeling-invariant data.
//
// ✨ Why choose canonical?
//
//   - Deterministic          — a fixed target-cell selector and a fixed
//     refinement worklist discipline make repeated runs byte-identical
//   - Allocation-conscious   — refinement scratch lives in a per-call cache,
//     and backtracking restores colorings in place instead of copying them
//   - Extensible             — plug in any structure through the
//     canonize.Structure capability; gRDF is just the bundled example
//   - Pure Go                — no cgo, no hidden dependencies
//
// Quick sketch: canonizing the gRDF graph { (Var 0, Var 1, Var 2) } and the
// relabeled { (Var 2, Var 1, Var 0) } yields the same canonical image, plus
// a witness permutation realizing it.
//
// Dive into the per-package documentation for the data-structure invariants
// and the search-tree mechanics.
//
//	go get github.com/katalvlaran/canonical
package canonical
