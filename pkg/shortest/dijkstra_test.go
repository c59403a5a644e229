package shortest

import (
	"errors"
	"reflect"
	"testing"

	"github.com/wordmorph/wordmorph/pkg/metric"
	"github.com/wordmorph/wordmorph/pkg/wordgraph"
)

func buildGraph(t *testing.T, words []string, maxDistance int) *wordgraph.Graph {
	t.Helper()
	g, err := wordgraph.New(len(words), maxDistance)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, w := range words {
		if _, err := g.Insert(w); err != nil {
			t.Fatalf("Insert(%q): %v", w, err)
		}
	}
	if err := g.BuildEdges(metric.Hamming); err != nil {
		t.Fatalf("BuildEdges: %v", err)
	}
	return g
}

func TestRunLadder(t *testing.T) {
	g := buildGraph(t, []string{"cat", "cot", "cog", "dog"}, 1)

	res, err := Run(g, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	wantDist := []int{0, 1, 2, 3}
	if !reflect.DeepEqual(res.Dist, wantDist) {
		t.Errorf("Dist = %v, want %v", res.Dist, wantDist)
	}
	wantPrev := []int{None, 0, 1, 2}
	if !reflect.DeepEqual(res.Prev, wantPrev) {
		t.Errorf("Prev = %v, want %v", res.Prev, wantPrev)
	}
}

func TestRunSourceProperties(t *testing.T) {
	g := buildGraph(t, []string{"cat", "cot", "cog", "dog", "dot"}, 2)

	for s := 0; s < g.Len(); s++ {
		res, err := Run(g, s)
		if err != nil {
			t.Fatalf("Run(%d): %v", s, err)
		}
		if res.Dist[s] != 0 {
			t.Errorf("Dist[source=%d] = %d, want 0", s, res.Dist[s])
		}
		if res.Prev[s] != None {
			t.Errorf("Prev[source=%d] = %d, want None", s, res.Prev[s])
		}
	}
}

// Every edge must satisfy the relaxed triangle inequality in a finished run.
func TestRunTriangleProperty(t *testing.T) {
	g := buildGraph(t, []string{"bat", "cat", "cot", "cog", "dog", "bog", "bad"}, 2)

	res, err := Run(g, 1)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for u := 0; u < g.Len(); u++ {
		if res.Dist[u] == Inf {
			continue
		}
		adj, _ := g.Adjacency(u)
		for _, e := range adj {
			if res.Dist[e.To] > res.Dist[u]+e.Weight {
				t.Errorf("triangle violated: dist[%d]=%d > dist[%d]=%d + %d",
					e.To, res.Dist[e.To], u, res.Dist[u], e.Weight)
			}
		}
	}
}

func TestRunSymmetry(t *testing.T) {
	g := buildGraph(t, []string{"cat", "cot", "cog", "dog", "dot", "bat"}, 1)

	a, _ := g.FindVertex("cat")
	b, _ := g.FindVertex("dog")

	fromA, err := Run(g, a)
	if err != nil {
		t.Fatalf("Run(a): %v", err)
	}
	fromB, err := Run(g, b)
	if err != nil {
		t.Fatalf("Run(b): %v", err)
	}
	if fromA.Dist[b] != fromB.Dist[a] {
		t.Errorf("asymmetric distances: a→b=%d, b→a=%d", fromA.Dist[b], fromB.Dist[a])
	}
}

func TestRunIdempotent(t *testing.T) {
	g := buildGraph(t, []string{"cat", "cot", "cog", "dog"}, 1)

	first, err := Run(g, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := Run(g, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two runs from the same source differ on an unmodified graph")
	}
}

func TestRunDisconnected(t *testing.T) {
	// "zzz" is more than one substitution from everything else.
	g := buildGraph(t, []string{"cat", "cot", "zzz"}, 1)

	res, err := Run(g, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	z, _ := g.FindVertex("zzz")
	if res.Dist[z] != Inf {
		t.Errorf("Dist[zzz] = %d, want Inf", res.Dist[z])
	}
	if res.Prev[z] != None {
		t.Errorf("Prev[zzz] = %d, want None", res.Prev[z])
	}
}

// A heavier direct edge must lose to a chain of cheap ones: the direct
// cat→cog edge costs 2²=4 while cat→cot→cog costs 1+1=2.
func TestRunQuadraticWeightsPreferSmallSteps(t *testing.T) {
	g := buildGraph(t, []string{"cat", "cot", "cog"}, 2)

	res, err := Run(g, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	cog, _ := g.FindVertex("cog")
	cot, _ := g.FindVertex("cot")
	if res.Dist[cog] != 2 {
		t.Errorf("Dist[cog] = %d, want 2", res.Dist[cog])
	}
	if res.Prev[cog] != cot {
		t.Errorf("Prev[cog] = %d, want %d (cot)", res.Prev[cog], cot)
	}
}

func TestRunSourceRange(t *testing.T) {
	g := buildGraph(t, []string{"cat", "cot"}, 1)

	for _, src := range []int{-1, 2, 99} {
		if _, err := Run(g, src); !errors.Is(err, ErrSourceRange) {
			t.Errorf("Run(source=%d) error = %v, want ErrSourceRange", src, err)
		}
	}
}
