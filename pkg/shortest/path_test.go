package shortest

import (
	"errors"
	"reflect"
	"testing"
)

func TestPathIndicesLadder(t *testing.T) {
	g := buildGraph(t, []string{"cat", "cot", "cog", "dog"}, 1)
	res, err := Run(g, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	path, err := PathIndices(res.Prev, 0, 3)
	if err != nil {
		t.Fatalf("PathIndices: %v", err)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v, want %v", path, want)
	}

	words, err := PathWords(g, res.Prev, 0, 3)
	if err != nil {
		t.Fatalf("PathWords: %v", err)
	}
	if want := []string{"cat", "cot", "cog", "dog"}; !reflect.DeepEqual(words, want) {
		t.Errorf("words = %v, want %v", words, want)
	}
}

func TestPathIsSimpleAndConnected(t *testing.T) {
	g := buildGraph(t, []string{"bat", "cat", "cot", "cog", "dog", "bog"}, 2)
	src, _ := g.FindVertex("bat")
	dst, _ := g.FindVertex("dog")

	res, err := Run(g, src)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	path, err := PathIndices(res.Prev, src, dst)
	if err != nil {
		t.Fatalf("PathIndices: %v", err)
	}

	seen := make(map[int]bool)
	total := 0
	for i, v := range path {
		if seen[v] {
			t.Fatalf("path revisits vertex %d", v)
		}
		seen[v] = true
		if i == 0 {
			continue
		}
		adj, _ := g.Adjacency(path[i-1])
		weight := -1
		for _, e := range adj {
			if e.To == v {
				weight = e.Weight
				break
			}
		}
		if weight < 0 {
			t.Fatalf("consecutive pair %d→%d is not an edge", path[i-1], v)
		}
		total += weight
	}
	if total != res.Dist[dst] {
		t.Errorf("sum of path weights = %d, want reported distance %d", total, res.Dist[dst])
	}
}

func TestPathSourceEqualsDestination(t *testing.T) {
	g := buildGraph(t, []string{"cat", "cot"}, 1)
	res, _ := Run(g, 0)

	path, err := PathIndices(res.Prev, 0, 0)
	if err != nil {
		t.Fatalf("PathIndices: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v, want %v", path, want)
	}
	if res.Dist[0] != 0 {
		t.Errorf("Dist[source] = %d, want 0", res.Dist[0])
	}
}

func TestPathUnreachable(t *testing.T) {
	g := buildGraph(t, []string{"cat", "cot", "cog", "dog"}, 0)
	res, _ := Run(g, 0)

	if _, err := PathIndices(res.Prev, 0, 3); !errors.Is(err, ErrUnreachable) {
		t.Errorf("PathIndices error = %v, want ErrUnreachable", err)
	}
	if _, err := PathWords(g, res.Prev, 0, 3); !errors.Is(err, ErrUnreachable) {
		t.Errorf("PathWords error = %v, want ErrUnreachable", err)
	}
}

func TestPathRangeChecks(t *testing.T) {
	prev := []int{None, 0}

	if _, err := PathIndices(prev, -1, 1); !errors.Is(err, ErrSourceRange) {
		t.Errorf("negative source error = %v, want ErrSourceRange", err)
	}
	if _, err := PathIndices(prev, 0, 2); !errors.Is(err, ErrSourceRange) {
		t.Errorf("destination past end error = %v, want ErrSourceRange", err)
	}
}
