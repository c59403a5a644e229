// Package dict reads word-morph inputs and writes solved answers.
//
// Two textual formats are supported. A dictionary file holds one word
// per line. A pairs file holds one query per line, three whitespace
// separated fields: source word, target word, and the largest per-step
// substitution count the query permits.
//
// The package also groups dictionary words by length and builds one
// wordgraph per length that any query actually needs, mirroring the
// two-pass flow of the solver: scan the queries for per-length bounds,
// then load only the useful parts of the dictionary.
package dict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/wordmorph/wordmorph/pkg/metric"
	"github.com/wordmorph/wordmorph/pkg/wordgraph"
)

var (
	// ErrQueryFormat is returned when a pairs-file line does not hold
	// exactly two words and an integer bound.
	ErrQueryFormat = errors.New("query line must be: word1 word2 maxDistance")

	// ErrNegativeBound is returned when a query carries a negative
	// distance bound.
	ErrNegativeBound = errors.New("query distance bound must be non-negative")
)

// Query is one transformation request: find the cheapest path From→To
// over word steps of at most MaxDistance substitutions each.
type Query struct {
	From        string
	To          string
	MaxDistance int
}

// Length returns the word length this query operates on.
func (q Query) Length() int { return len(q.From) }

// ParseWords reads a dictionary: one word per line, blank lines skipped.
func ParseWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return words, nil
}

// ParseQueries reads a pairs file into queries, preserving line order.
func ParseQueries(r io.Reader) ([]Query, error) {
	var queries []Query
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: %w", line, ErrQueryFormat)
		}
		bound, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, ErrQueryFormat)
		}
		if bound < 0 {
			return nil, fmt.Errorf("line %d: %w", line, ErrNegativeBound)
		}
		queries = append(queries, Query{From: fields[0], To: fields[1], MaxDistance: bound})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read queries: %w", err)
	}
	return queries, nil
}

// LoadWords reads a dictionary file from disk.
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseWords(f)
}

// LoadQueries reads a pairs file from disk.
func LoadQueries(path string) ([]Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseQueries(f)
}

// MaxDistances collapses queries into the largest distance bound
// requested per word length. Lengths absent from the map need no graph.
func MaxDistances(queries []Query) map[int]int {
	bounds := make(map[int]int)
	for _, q := range queries {
		if q.MaxDistance > bounds[q.Length()] {
			bounds[q.Length()] = q.MaxDistance
		}
	}
	return bounds
}

// BuildGraphs groups words by length and builds one graph for every
// length present in bounds, using that length's bound as the edge
// cutoff. Words of other lengths are skipped entirely; a length with
// no matching dictionary words gets no graph.
//
// Insertion order follows dictionary order, so vertex indices are
// deterministic for a given dictionary.
func BuildGraphs(words []string, bounds map[int]int, dist metric.DistanceFunc) (map[int]*wordgraph.Graph, error) {
	grouped := make(map[int][]string)
	for _, w := range words {
		if _, needed := bounds[len(w)]; needed {
			grouped[len(w)] = append(grouped[len(w)], w)
		}
	}

	graphs := make(map[int]*wordgraph.Graph, len(grouped))
	for length, group := range grouped {
		g, err := wordgraph.Build(group, bounds[length], dist)
		if err != nil {
			return nil, fmt.Errorf("graph for length %d: %w", length, err)
		}
		graphs[length] = g
	}
	return graphs, nil
}
