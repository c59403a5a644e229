package wordgraph

import (
	"errors"

	"github.com/wordmorph/wordmorph/pkg/metric"
)

var (
	// ErrInvalidCapacity is returned by [New] when the requested capacity
	// is zero or negative. An empty graph cannot answer any query.
	ErrInvalidCapacity = errors.New("graph capacity must be positive")

	// ErrGraphFull is returned by [Graph.Insert] when the graph already
	// holds as many words as its declared capacity. It indicates a mismatch
	// between the caller's counting pass and its insert pass.
	ErrGraphFull = errors.New("graph is at capacity")

	// ErrVertexRange is returned when a vertex index is negative or not
	// below the number of inserted words.
	ErrVertexRange = errors.New("vertex index out of range")

	// ErrEdgesBuilt is returned by [Graph.BuildEdges] on a second call.
	// The graph is immutable once its edges exist; rebuilding is not
	// supported.
	ErrEdgesBuilt = errors.New("edges already built")

	// ErrMaxDistance is returned by [New] when the distance cutoff is
	// negative. A cutoff of zero is legal but produces an edgeless graph.
	ErrMaxDistance = errors.New("max distance must be non-negative")
)

// Edge is one directed half of an undirected connection between two
// vertices. Both endpoints record the same weight.
type Edge struct {
	To     int // index of the destination vertex
	Weight int // squared word distance, always >= 1
}

// Graph is a weighted undirected graph of same-length words.
//
// Vertices are identified by their insertion index, which never changes:
// distance arrays, predecessor arrays, and priority queues are all
// addressed by it. The graph is built in two phases - insert every word,
// then call BuildEdges exactly once - and is read-only afterwards, so any
// number of shortest-path runs may share it concurrently.
type Graph struct {
	words     []string
	adj       [][]Edge
	edgeCount int
	maxDist   int
	maxWeight int
	built     bool
}

// New creates a graph with storage for capacity words and the given
// distance cutoff. Words farther apart than maxDistance are never
// connected; the effective maximum edge weight after BuildEdges is
// maxDistance squared.
func New(capacity, maxDistance int) (*Graph, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if maxDistance < 0 {
		return nil, ErrMaxDistance
	}
	return &Graph{
		words:   make([]string, 0, capacity),
		adj:     make([][]Edge, 0, capacity),
		maxDist: maxDistance,
	}, nil
}

// Insert appends a word as a new vertex and returns its index.
// Indices are assigned in insertion order starting at zero. Returns
// ErrGraphFull once the declared capacity is reached.
func (g *Graph) Insert(word string) (int, error) {
	if len(g.words) == cap(g.words) {
		return 0, ErrGraphFull
	}
	g.words = append(g.words, word)
	g.adj = append(g.adj, nil)
	return len(g.words) - 1, nil
}

// BuildEdges connects every pair of inserted words whose distance under
// dist does not exceed the graph's cutoff, with weight distance squared.
// Each connection is recorded in both adjacency lists.
//
// This is an O(V²) scan over all unordered pairs. It may be called at
// most once; the graph is immutable afterwards.
func (g *Graph) BuildEdges(dist metric.DistanceFunc) error {
	if g.built {
		return ErrEdgesBuilt
	}

	for i := 1; i < len(g.words); i++ {
		for j := 0; j < i; j++ {
			d := dist(g.words[i], g.words[j])
			if d > g.maxDist {
				continue
			}
			w := d * d
			g.adj[i] = append(g.adj[i], Edge{To: j, Weight: w})
			g.adj[j] = append(g.adj[j], Edge{To: i, Weight: w})
			g.edgeCount++
		}
	}

	g.maxWeight = g.maxDist * g.maxDist
	g.built = true
	return nil
}

// Build constructs a complete graph in one call: all words are inserted
// in order and edges are built with the given distance function. Returns
// ErrInvalidCapacity when words is empty.
func Build(words []string, maxDistance int, dist metric.DistanceFunc) (*Graph, error) {
	g, err := New(len(words), maxDistance)
	if err != nil {
		return nil, err
	}
	for _, w := range words {
		if _, err := g.Insert(w); err != nil {
			return nil, err
		}
	}
	if err := g.BuildEdges(dist); err != nil {
		return nil, err
	}
	return g, nil
}

// FindVertex returns the index of the first vertex holding word.
// The scan is linear; dictionaries are assumed not to repeat a word, and
// if one does, the first-inserted vertex wins.
func (g *Graph) FindVertex(word string) (int, bool) {
	for i, w := range g.words {
		if w == word {
			return i, true
		}
	}
	return 0, false
}

// Len returns the number of inserted words.
func (g *Graph) Len() int { return len(g.words) }

// Cap returns the capacity declared at construction.
func (g *Graph) Cap() int { return cap(g.words) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// MaxDistance returns the distance cutoff for connecting words.
func (g *Graph) MaxDistance() int { return g.maxDist }

// MaxWeight returns the maximum possible edge weight. It is zero until
// BuildEdges has run, then maxDistance squared.
func (g *Graph) MaxWeight() int { return g.maxWeight }

// Word returns the payload of the vertex at index i.
func (g *Graph) Word(i int) (string, error) {
	if i < 0 || i >= len(g.words) {
		return "", ErrVertexRange
	}
	return g.words[i], nil
}

// Adjacency returns the edges incident to vertex i.
// The returned slice is a read-only view into the graph; callers must
// not modify it.
func (g *Graph) Adjacency(i int) ([]Edge, error) {
	if i < 0 || i >= len(g.adj) {
		return nil, ErrVertexRange
	}
	return g.adj[i], nil
}
