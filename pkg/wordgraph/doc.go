// Package wordgraph builds weighted undirected graphs over dictionaries
// of same-length words.
//
// Each vertex holds one word; two vertices are connected when their
// distance under an injected metric stays within the graph's cutoff, and
// the edge weight is that distance squared. Squaring makes a single
// three-letter substitution cost more than three single-letter steps, so
// shortest paths prefer many small transformations over few drastic ones.
//
// # Construction protocol
//
// A graph goes through two phases. First every word is inserted, in a
// deterministic order that fixes vertex indices for the lifetime of the
// graph. Then BuildEdges performs one O(V²) pair scan and freezes the
// structure. Reads may then proceed concurrently without locking.
//
//	g, _ := wordgraph.New(4, 1)
//	for _, w := range []string{"cat", "cot", "cog", "dog"} {
//	    g.Insert(w)
//	}
//	g.BuildEdges(metric.Hamming)
//
// Graphs never connect words of different lengths: the caller groups the
// dictionary by word length and builds one graph per group.
package wordgraph
