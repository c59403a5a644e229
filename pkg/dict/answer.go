package dict

import (
	"bufio"
	"fmt"
	"io"
)

// UnreachableCost is reported for queries with no path. The value is
// part of the output file format.
const UnreachableCost = -1

// Answer is the solved form of one query. For a reachable pair, Words
// holds the full path including both endpoints and Cost the summed edge
// weights. For an unreachable pair Words is nil and Cost is
// UnreachableCost.
type Answer struct {
	Query Query    `json:"query"`
	Words []string `json:"words,omitempty"`
	Cost  int      `json:"cost"`
}

// Reachable reports whether a path was found.
func (a Answer) Reachable() bool { return a.Cost != UnreachableCost }

// WriteAnswers writes answers in the path file format, in order.
//
// A reachable answer prints the source word and total cost on one line,
// then every following word of the path on its own line. An unreachable
// answer prints the source word with cost -1, then the target word.
func WriteAnswers(w io.Writer, answers []Answer) error {
	bw := bufio.NewWriter(w)
	for _, a := range answers {
		if !a.Reachable() {
			fmt.Fprintf(bw, "%s %d\n%s\n", a.Query.From, UnreachableCost, a.Query.To)
			continue
		}
		fmt.Fprintf(bw, "%s %d\n", a.Words[0], a.Cost)
		for _, word := range a.Words[1:] {
			fmt.Fprintln(bw, word)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write answers: %w", err)
	}
	return nil
}
