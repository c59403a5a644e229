// Package shortest runs single-source shortest-path searches over word
// graphs and reconstructs explicit paths from the result.
//
// The search is label-setting Dijkstra: every extraction from the
// priority queue finalizes one vertex, and finalized vertices are never
// revisited. The queue is an index-addressable binary heap ([IndexQueue])
// whose keys live in the caller's distance slice, giving logarithmic
// decrease-key instead of linear rescans and an overall
// O((V+E) log V) run.
//
// A run produces a full distance and predecessor array ([Result]); the
// predecessor links form a tree rooted at the source, which [PathIndices]
// and [PathWords] turn back into an ordered path. Unreachability is an
// explicit result (ErrUnreachable), not a failure.
//
// Each run owns its state and never mutates the graph, so queries
// against one built graph may run concurrently.
package shortest
