package wordgraph_test

import (
	"fmt"

	"github.com/wordmorph/wordmorph/pkg/metric"
	"github.com/wordmorph/wordmorph/pkg/wordgraph"
)

func ExampleGraph() {
	// Connect words that differ in at most one letter.
	g, _ := wordgraph.New(4, 1)
	for _, w := range []string{"cat", "cot", "cog", "dog"} {
		g.Insert(w)
	}
	g.BuildEdges(metric.Hamming)

	fmt.Println("vertices:", g.Len())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("max weight:", g.MaxWeight())
	// Output:
	// vertices: 4
	// edges: 3
	// max weight: 1
}

func ExampleGraph_FindVertex() {
	g, _ := wordgraph.New(2, 1)
	g.Insert("cat")
	g.Insert("cot")

	idx, ok := g.FindVertex("cot")
	fmt.Println(idx, ok)
	_, ok = g.FindVertex("dog")
	fmt.Println(ok)
	// Output:
	// 1 true
	// false
}
