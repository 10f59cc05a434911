// Package grdf models generalized RDF graphs (sets of triples whose
// positions hold either a ground value or a variable) and canonizes them
// up to variable (blank-node) relabeling. It is the worked example of the
// canonize.Structure capability, and the domain the engine was built for.
//
// Key types:
//
//   - Term[V]   — Var(i) or Val(v); ground values order before variables
//   - Triple[V] — (subject, predicate, object), compared lexicographically
//   - Graph[V]  — a sorted, deduplicated triple set over variables
//     0 … Vars()−1
//
// Graph implements the capability as follows:
//
//   - the universe is the variable index set;
//   - the initial coloring assigns each variable the sorted multiset of
//     "local shapes" of the triples it occurs in (which positions it fills,
//     which positions repeat it, and the ground values around it);
//   - refinement is equitable refinement over variable co-occurrence: two
//     variables are neighbors when they appear in a common triple;
//   - the morphism image is the graph with every variable relabeled.
//
// All three are invariant under variable relabeling, which is exactly what
// the canonizer requires.
//
// Entry points: Canonize computes the canonical image and a witness
// relabeling; Isomorphic tests two graphs for equality up to relabeling.
//
// Errors:
//
//   - ErrGraphNil       if a nil *Graph is passed.
//   - ErrVarOutOfRange  if a triple names Var(i) with i outside the graph's
//     declared variable range.
package grdf
