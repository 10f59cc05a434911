// Package canonize walks the individualization/refinement/backtracking
// search tree over a reversible coloring and returns the canonical form of
// a structure: the minimum image over all leaves of the search tree, under
// the structure's image order, together with a witness permutation
// realizing it. When the refinement hook splits cells, the leaves cover
// only part of the relabelings, so that minimum need not be the minimum
// over every relabeling.
//
// Key features:
//   - Canonize(g, opts...): full canonicalization of any Structure
//   - Automorphism pruning: two leaves with equal images witness an
//     automorphism; the search skips the whole subtree below the paths'
//     divergence point
//   - Cancellation via context.Context, checked between leaf advances
//   - Diagnostics: Result carries visited-leaf and pruned-subtree counters
//
// The structure under canonization is supplied through the Structure
// capability: its universe, an initial coloring invariant under
// automorphisms, a deterministic refinement hook, and morphism application.
// Correctness requires these to be isomorphism-equivariant: permuting the
// universe before and after each of them must commute. The canonizer cannot
// detect a violation; it would still be deterministic on each input, but
// isomorphic inputs could disagree.
//
// Determinism: the target cell of every tree node is the first
// non-singleton cell by index, and siblings are explored in ascending
// element order. The selector is fixed; changing it would change the
// witness permutation (not the image).
//
// Complexity: worst case exponential in the universe size, as for every
// canonical-labeling search; equitable refinement plus automorphism pruning
// keep typical instances near-linear in the number of tree leaves actually
// visited.
//
// Errors:
//
//   - ErrStructureNil    if g is nil.
//   - context.Canceled / DeadlineExceeded  if the context ends mid-search.
package canonize
