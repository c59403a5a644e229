package dict

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/wordmorph/wordmorph/pkg/metric"
)

func TestParseWords(t *testing.T) {
	input := "cat\ncot\n\n  cog  \ndog\n"
	words, err := ParseWords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseWords: %v", err)
	}
	if want := []string{"cat", "cot", "cog", "dog"}; !reflect.DeepEqual(words, want) {
		t.Errorf("words = %v, want %v", words, want)
	}
}

func TestParseQueries(t *testing.T) {
	input := "cat dog 1\n\nfrail snack 2\n"
	queries, err := ParseQueries(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseQueries: %v", err)
	}
	want := []Query{
		{From: "cat", To: "dog", MaxDistance: 1},
		{From: "frail", To: "snack", MaxDistance: 2},
	}
	if !reflect.DeepEqual(queries, want) {
		t.Errorf("queries = %v, want %v", queries, want)
	}
}

func TestParseQueriesErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"missing bound", "cat dog\n", ErrQueryFormat},
		{"non-numeric bound", "cat dog two\n", ErrQueryFormat},
		{"extra field", "cat dog 1 x\n", ErrQueryFormat},
		{"negative bound", "cat dog -1\n", ErrNegativeBound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseQueries(strings.NewReader(tt.input)); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMaxDistances(t *testing.T) {
	queries := []Query{
		{From: "cat", To: "dog", MaxDistance: 1},
		{From: "cot", To: "dot", MaxDistance: 3},
		{From: "frail", To: "snack", MaxDistance: 2},
	}
	got := MaxDistances(queries)
	want := map[int]int{3: 3, 5: 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MaxDistances = %v, want %v", got, want)
	}
}

func TestBuildGraphs(t *testing.T) {
	words := []string{"cat", "cot", "frail", "cog", "snack", "dog", "ignored1"}
	bounds := map[int]int{3: 1, 5: 2}

	graphs, err := BuildGraphs(words, bounds, metric.Hamming)
	if err != nil {
		t.Fatalf("BuildGraphs: %v", err)
	}

	if len(graphs) != 2 {
		t.Fatalf("built %d graphs, want 2", len(graphs))
	}
	g3 := graphs[3]
	if g3.Len() != 4 || g3.Cap() != 4 {
		t.Errorf("length-3 graph Len/Cap = %d/%d, want 4/4", g3.Len(), g3.Cap())
	}
	if g3.MaxDistance() != 1 {
		t.Errorf("length-3 cutoff = %d, want 1", g3.MaxDistance())
	}
	// Dictionary order fixes vertex indices.
	if idx, ok := g3.FindVertex("cat"); !ok || idx != 0 {
		t.Errorf("FindVertex(cat) = %d, %v, want 0, true", idx, ok)
	}
	if idx, ok := g3.FindVertex("dog"); !ok || idx != 3 {
		t.Errorf("FindVertex(dog) = %d, %v, want 3, true", idx, ok)
	}

	g5 := graphs[5]
	if g5.Len() != 2 {
		t.Errorf("length-5 graph Len = %d, want 2", g5.Len())
	}

	// Length 8 had no bound, so no graph exists for it.
	if _, ok := graphs[8]; ok {
		t.Error("graph built for a length no query needs")
	}
}

func TestBuildGraphsSkipsEmptyLengths(t *testing.T) {
	graphs, err := BuildGraphs([]string{"cat"}, map[int]int{3: 1, 7: 2}, metric.Hamming)
	if err != nil {
		t.Fatalf("BuildGraphs: %v", err)
	}
	if _, ok := graphs[7]; ok {
		t.Error("graph allocated for a length with no dictionary words")
	}
}

func TestWriteAnswers(t *testing.T) {
	answers := []Answer{
		{
			Query: Query{From: "cat", To: "dog", MaxDistance: 1},
			Words: []string{"cat", "cot", "cog", "dog"},
			Cost:  3,
		},
		{
			Query: Query{From: "cat", To: "dog", MaxDistance: 0},
			Cost:  UnreachableCost,
		},
	}

	var sb strings.Builder
	if err := WriteAnswers(&sb, answers); err != nil {
		t.Fatalf("WriteAnswers: %v", err)
	}

	want := "cat 3\ncot\ncog\ndog\ncat -1\ndog\n"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}
