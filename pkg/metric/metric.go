// Package metric provides distance functions over words.
//
// The engine treats the metric as an injected pure function: graph
// construction asks the metric how far apart two words are and derives
// edge weights from the answer. Any function that is symmetric and
// returns zero only for identical words can be plugged in.
package metric

// DistanceFunc measures how far apart two words are.
// Implementations must be symmetric (f(a,b) == f(b,a)) and return zero
// only when a == b.
type DistanceFunc func(a, b string) int

// Hamming returns the generalized Hamming distance between two words:
// the number of character positions at which they differ. When the words
// have different lengths, each position past the end of the shorter word
// counts as a difference, so the result is zero only for identical words.
func Hamming(a, b string) int {
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}

	dist := len(long) - len(short)
	for i := 0; i < len(short); i++ {
		if short[i] != long[i] {
			dist++
		}
	}
	return dist
}
