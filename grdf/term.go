package grdf

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/canonical/set"
)

// Term is one position of a gRDF triple: a variable index or a ground
// value of type V. Ground values order before variables; variables order by
// index, values by V's natural order.
type Term[V cmp.Ordered] struct {
	// IsVar selects the variant: Index is meaningful when true, Value when
	// false.
	IsVar bool

	// Index is the variable index, 0-based within the owning graph.
	Index int

	// Value is the ground value.
	Value V
}

// Var returns the term naming variable i.
func Var[V cmp.Ordered](i int) Term[V] {
	return Term[V]{IsVar: true, Index: i}
}

// Val returns the ground term holding v.
func Val[V cmp.Ordered](v V) Term[V] {
	return Term[V]{Value: v}
}

// Compare is the total order on terms.
func (t Term[V]) Compare(other Term[V]) int {
	if t.IsVar != other.IsVar {
		if t.IsVar {
			return 1
		}

		return -1
	}
	if t.IsVar {
		return cmp.Compare(t.Index, other.Index)
	}

	return cmp.Compare(t.Value, other.Value)
}

// apply relabels a variable term through perm; ground terms pass through.
func (t Term[V]) apply(perm set.Map[int]) Term[V] {
	if t.IsVar {
		return Term[V]{IsVar: true, Index: perm.Get(t.Index)}
	}

	return t
}

// String renders "?3" for variables and "v" for ground values.
func (t Term[V]) String() string {
	if t.IsVar {
		return fmt.Sprintf("?%d", t.Index)
	}

	return fmt.Sprintf("%v", t.Value)
}

// Triple is one gRDF statement: subject, predicate, object. Any position
// may be a variable.
type Triple[V cmp.Ordered] struct {
	S, P, O Term[V]
}

// NewTriple builds the triple (s, p, o).
func NewTriple[V cmp.Ordered](s, p, o Term[V]) Triple[V] {
	return Triple[V]{S: s, P: p, O: o}
}

// Compare orders triples lexicographically by subject, predicate, object.
func (t Triple[V]) Compare(other Triple[V]) int {
	if d := t.S.Compare(other.S); d != 0 {
		return d
	}
	if d := t.P.Compare(other.P); d != 0 {
		return d
	}

	return t.O.Compare(other.O)
}

// apply relabels every variable position through perm.
func (t Triple[V]) apply(perm set.Map[int]) Triple[V] {
	return Triple[V]{S: t.S.apply(perm), P: t.P.apply(perm), O: t.O.apply(perm)}
}

// String renders "(?0 p ?2)".
func (t Triple[V]) String() string {
	return fmt.Sprintf("(%s %s %s)", t.S, t.P, t.O)
}
