package cli

import "testing"

func TestBuildLengthGraph(t *testing.T) {
	words := []string{"cat", "cot", "dog", "house"}

	g, err := buildLengthGraph(words, 3, 1)
	if err != nil {
		t.Fatalf("buildLengthGraph: %v", err)
	}
	if g == nil {
		t.Fatal("expected a graph for length 3")
	}
	if g.Len() != 3 {
		t.Errorf("Len() = %d, want 3", g.Len())
	}
	// cat-cot is the only pair within distance 1.
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
}

func TestBuildLengthGraphNoWords(t *testing.T) {
	g, err := buildLengthGraph([]string{"cat"}, 7, 1)
	if err != nil {
		t.Fatalf("buildLengthGraph: %v", err)
	}
	if g != nil {
		t.Error("expected nil graph for empty length")
	}
}
