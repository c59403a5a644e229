// Package render turns word graphs into Graphviz DOT and image formats.
//
// The DOT output is an undirected graph with one node per word and edge
// labels carrying the squared-distance weights. A solved path can be
// highlighted, which is useful for eyeballing why the solver picked a
// particular ladder.
package render

import (
	"bytes"
	"fmt"

	"github.com/wordmorph/wordmorph/pkg/wordgraph"
)

// Options configures DOT generation.
type Options struct {
	// Highlight is a path (as returned by shortest.PathWords) whose
	// vertices and edges are emphasized. Nil disables highlighting.
	Highlight []string

	// ShowWeights adds edge weight labels.
	ShowWeights bool
}

// ToDOT converts a word graph to Graphviz DOT format.
// Each undirected edge is emitted once, from the lower vertex index.
func ToDOT(g *wordgraph.Graph, opts Options) string {
	onPath := make(map[string]bool, len(opts.Highlight))
	pathEdge := make(map[[2]string]bool)
	for i, w := range opts.Highlight {
		onPath[w] = true
		if i > 0 {
			pathEdge[edgeKey(opts.Highlight[i-1], w)] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph words {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fillcolor=white, fontname=\"Helvetica\"];\n")
	buf.WriteString("\n")

	for i := 0; i < g.Len(); i++ {
		w, _ := g.Word(i)
		if onPath[w] {
			fmt.Fprintf(&buf, "  %q [fillcolor=lightblue, penwidth=2];\n", w)
		} else {
			fmt.Fprintf(&buf, "  %q;\n", w)
		}
	}

	buf.WriteString("\n")
	for i := 0; i < g.Len(); i++ {
		adj, _ := g.Adjacency(i)
		wi, _ := g.Word(i)
		for _, e := range adj {
			if e.To < i {
				continue // emit each undirected edge once
			}
			wj, _ := g.Word(e.To)
			attrs := edgeAttrs(e.Weight, pathEdge[edgeKey(wi, wj)], opts.ShowWeights)
			if attrs == "" {
				fmt.Fprintf(&buf, "  %q -- %q;\n", wi, wj)
			} else {
				fmt.Fprintf(&buf, "  %q -- %q [%s];\n", wi, wj, attrs)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

func edgeAttrs(weight int, highlighted, showWeights bool) string {
	var attrs []byte
	if showWeights {
		attrs = fmt.Appendf(attrs, "label=%d", weight)
	}
	if highlighted {
		if len(attrs) > 0 {
			attrs = append(attrs, ", "...)
		}
		attrs = append(attrs, "color=blue, penwidth=2"...)
	}
	return string(attrs)
}
