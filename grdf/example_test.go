package grdf_test

import (
	"fmt"

	"github.com/katalvlaran/canonical/grdf"
)

func ExampleCanonize() {
	g, _ := grdf.New(2,
		grdf.NewTriple(grdf.Var[string](0), grdf.Val("knows"), grdf.Var[string](1)),
	)

	res, _ := grdf.Canonize(g)
	fmt.Println(res.Image)
	// Output: {(?0 knows ?1)}
}

func ExampleIsomorphic() {
	a, _ := grdf.New(2, grdf.NewTriple(grdf.Var[string](0), grdf.Val("knows"), grdf.Var[string](1)))
	b, _ := grdf.New(2, grdf.NewTriple(grdf.Var[string](1), grdf.Val("knows"), grdf.Var[string](0)))

	iso, _ := grdf.Isomorphic(a, b)
	fmt.Println(iso)
	// Output: true
}
