// Local triple shapes: the initial, relabeling-invariant color of a
// variable is the sorted multiset of shapes of the triples it occurs in.

package grdf

import "cmp"

// colorKind enumerates the shape of one triple relative to a variable X:
// which positions X fills, which positions repeat X or hold another
// variable (Y, Z), and which hold ground values (V). Declaration order is
// the sort order.
type colorKind uint8

const (
	// No values, one variable.
	kindXXX colorKind = iota

	// No values, two variables.
	kindXYY
	kindYXY
	kindYYX
	kindXXY
	kindXYX
	kindYXX

	// No values, three variables.
	kindXYZ
	kindYXZ
	kindYZX

	// One value, one variable (payload a).
	kindXXV
	kindXVX
	kindVXX

	// One value, two variables (payload a).
	kindXYV
	kindXVY
	kindYXV
	kindVXY
	kindYVX
	kindVYX

	// Two values, one variable (payloads a, b).
	kindXVV
	kindVXV
	kindVVX
)

// termColor is one triple shape with its ground payloads. Kinds carrying
// fewer than two values leave the rest at V's zero value, which is fine:
// payloads only break ties between colors of the same kind.
type termColor[V cmp.Ordered] struct {
	kind colorKind
	a, b V
}

func shape[V cmp.Ordered](kind colorKind) termColor[V] {
	return termColor[V]{kind: kind}
}

func shape1[V cmp.Ordered](kind colorKind, a V) termColor[V] {
	return termColor[V]{kind: kind, a: a}
}

func shape2[V cmp.Ordered](kind colorKind, a, b V) termColor[V] {
	return termColor[V]{kind: kind, a: a, b: b}
}

// compare orders colors by kind, then payloads.
func (c termColor[V]) compare(other termColor[V]) int {
	if d := cmp.Compare(c.kind, other.kind); d != 0 {
		return d
	}
	if d := cmp.Compare(c.a, other.a); d != 0 {
		return d
	}

	return cmp.Compare(c.b, other.b)
}

// colorTriple appends, for every variable occurring in t, the shape of t
// seen from that variable.
func colorTriple[V cmp.Ordered](colors [][]termColor[V], t Triple[V]) {
	s, p, o := t.S, t.P, t.O
	switch {
	// No values: three variable positions.
	case s.IsVar && p.IsVar && o.IsVar:
		x, y, z := s.Index, p.Index, o.Index
		switch {
		case x == y && y == z:
			colors[x] = append(colors[x], shape[V](kindXXX))
		case x == y:
			colors[x] = append(colors[x], shape[V](kindXXY))
			colors[z] = append(colors[z], shape[V](kindYYX))
		case y == z:
			colors[x] = append(colors[x], shape[V](kindXYY))
			colors[y] = append(colors[y], shape[V](kindYXX))
		case x == z:
			colors[x] = append(colors[x], shape[V](kindXYX))
			colors[y] = append(colors[y], shape[V](kindYXY))
		default:
			colors[x] = append(colors[x], shape[V](kindXYZ))
			colors[y] = append(colors[y], shape[V](kindYXZ))
			colors[z] = append(colors[z], shape[V](kindYZX))
		}

	// One value: two variable positions.
	case s.IsVar && p.IsVar:
		x, y := s.Index, p.Index
		if x == y {
			colors[x] = append(colors[x], shape1(kindXXV, o.Value))
		} else {
			colors[x] = append(colors[x], shape1(kindXYV, o.Value))
			colors[y] = append(colors[y], shape1(kindYXV, o.Value))
		}
	case s.IsVar && o.IsVar:
		x, y := s.Index, o.Index
		if x == y {
			colors[x] = append(colors[x], shape1(kindXVX, p.Value))
		} else {
			colors[x] = append(colors[x], shape1(kindXVY, p.Value))
			colors[y] = append(colors[y], shape1(kindYVX, p.Value))
		}
	case p.IsVar && o.IsVar:
		x, y := p.Index, o.Index
		if x == y {
			colors[x] = append(colors[x], shape1(kindVXX, s.Value))
		} else {
			colors[x] = append(colors[x], shape1(kindVXY, s.Value))
			colors[y] = append(colors[y], shape1(kindVYX, s.Value))
		}

	// Two values: one variable position.
	case s.IsVar:
		colors[s.Index] = append(colors[s.Index], shape2(kindXVV, p.Value, o.Value))
	case p.IsVar:
		colors[p.Index] = append(colors[p.Index], shape2(kindVXV, s.Value, o.Value))
	case o.IsVar:
		colors[o.Index] = append(colors[o.Index], shape2(kindVVX, s.Value, p.Value))

	// All ground: no variable to color.
	default:
	}
}
