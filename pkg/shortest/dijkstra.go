package shortest

import (
	"errors"
	"math"

	"github.com/wordmorph/wordmorph/pkg/wordgraph"
)

// Inf is the sentinel distance of a vertex the search never reached.
// Comparisons against it always lose, so unreached vertices need no
// special-casing in the queue.
const Inf = math.MaxInt

// None marks the absence of a predecessor: the source vertex itself, or
// a vertex the search never reached.
const None = -1

var (
	// ErrSourceRange is returned by [Run] when the source index does not
	// name a vertex of the graph. This is a caller contract violation,
	// not a recoverable search outcome.
	ErrSourceRange = errors.New("source vertex out of range")

	// ErrUnreachable is returned by [PathIndices] and [PathWords] when no
	// path connects the two vertices. It is an expected outcome, reported
	// per query, never an abort.
	ErrUnreachable = errors.New("destination unreachable from source")
)

// Result holds the output of one single-source run: the best-known cost
// and the predecessor link for every vertex of the graph, both addressed
// by vertex index.
type Result struct {
	// Dist[v] is the minimum total edge weight from the source to v, or
	// Inf when v is unreachable. Dist[source] is always 0.
	Dist []int

	// Prev[v] is the vertex preceding v on a minimum-cost path, or None
	// for the source and for unreached vertices. The links form a
	// shortest-path tree rooted at the source.
	Prev []int
}

// Run executes label-setting Dijkstra over g from the given source and
// returns distances and predecessors for every vertex.
//
// All vertices start in the queue; each iteration extracts the one with
// the smallest tentative distance, finalizes it, and relaxes its edges.
// When the extracted minimum is still Inf the remaining queue is
// entirely disconnected from the source, so the run stops early and
// leaves those vertices at Inf with no predecessor.
//
// Run does not mutate g. Concurrent runs over one graph are safe as
// long as the graph's edges were fully built beforehand.
func Run(g *wordgraph.Graph, source int) (*Result, error) {
	n := g.Len()
	if source < 0 || source >= n {
		return nil, ErrSourceRange
	}

	dist := make([]int, n)
	prev := make([]int, n)
	for v := 0; v < n; v++ {
		dist[v] = Inf
		prev[v] = None
	}
	dist[source] = 0

	q := NewIndexQueue(n, func(a, b int) bool { return dist[a] < dist[b] })
	for v := 0; v < n; v++ {
		q.Push(v)
	}

	for {
		u, ok := q.Pop()
		if !ok || dist[u] == Inf {
			break
		}
		adj, err := g.Adjacency(u)
		if err != nil {
			return nil, err
		}
		for _, e := range adj {
			candidate := dist[u] + e.Weight
			if candidate < dist[e.To] {
				dist[e.To] = candidate
				prev[e.To] = u
				q.Fix(e.To)
			}
		}
	}

	return &Result{Dist: dist, Prev: prev}, nil
}
