package coloring_test

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/canonical/coloring"
	"github.com/katalvlaran/canonical/set"
)

func ExampleReversible_Individualize() {
	r := coloring.NewReversible(set.Ints(3))
	r.Individualize(1)
	fmt.Println(r.String())
	// Output: {[1], [0 2]}
}

func ExampleReversible_MakeEquitable() {
	// Edge 0-1 with 2 isolated: the isolated vertex splits off by degree.
	adj := [][]int{{1}, {0}, {}}
	neighbors := func(x int) iter.Seq[int] { return slices.Values(adj[x]) }

	r := coloring.NewReversible(set.Ints(3))
	r.MakeEquitable(neighbors)
	fmt.Println(r.String())
	// Output: {[2], [0 1]}
}

func ExampleReversible_Restore() {
	r := coloring.NewReversible(set.Ints(4))

	r.Begin()
	r.Individualize(2)
	fmt.Println(r.String())

	r.Restore(1)
	fmt.Println(r.String())
	// Output:
	// {[2], [0 1 3]}
	// {[0 1 2 3]}
}
