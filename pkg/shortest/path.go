package shortest

import "github.com/wordmorph/wordmorph/pkg/wordgraph"

// PathIndices walks the predecessor links backward from destination to
// source and returns the vertex indices in source→destination order.
// The source is the first element and the destination the last; when
// source == destination the path is that single vertex.
//
// Returns ErrUnreachable when no predecessor chain connects the two, and
// ErrSourceRange when either index is outside the predecessor array.
// The walk is iterative, so path length is bounded only by memory, not
// stack depth.
func PathIndices(prev []int, source, destination int) ([]int, error) {
	if source < 0 || source >= len(prev) || destination < 0 || destination >= len(prev) {
		return nil, ErrSourceRange
	}
	if destination == source {
		return []int{source}, nil
	}
	if prev[destination] == None {
		return nil, ErrUnreachable
	}

	var path []int
	for v := destination; v != None; v = prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// PathWords resolves the path from PathIndices into the words held by
// the graph's vertices.
func PathWords(g *wordgraph.Graph, prev []int, source, destination int) ([]string, error) {
	indices, err := PathIndices(prev, source, destination)
	if err != nil {
		return nil, err
	}
	words := make([]string, len(indices))
	for i, v := range indices {
		w, err := g.Word(v)
		if err != nil {
			return nil, err
		}
		words[i] = w
	}
	return words, nil
}
