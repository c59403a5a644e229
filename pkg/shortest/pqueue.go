package shortest

// IndexQueue is a binary min-heap over vertex indices 0..n-1.
//
// The queue does not own priorities: it orders indices through a less
// function that consults whatever key table the caller maintains,
// typically the tentative-distance slice of a running search. Because
// the keys live outside the heap, lowering one never requires replacing
// a stored value - the caller updates its table and calls Fix, which
// restores heap order in O(log n) using an index→slot position map.
//
// The zero value is not usable; construct with NewIndexQueue.
type IndexQueue struct {
	less func(a, b int) bool
	heap []int // heap[slot] = vertex index
	pos  []int // pos[vertex] = slot in heap, -1 when absent
}

// NewIndexQueue creates an empty queue over the index universe 0..n-1.
// The less function reports whether vertex a currently orders before
// vertex b; it is consulted on every sift, so changes to the underlying
// keys are picked up by Fix without re-inserting.
func NewIndexQueue(n int, less func(a, b int) bool) *IndexQueue {
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	return &IndexQueue{
		less: less,
		heap: make([]int, 0, n),
		pos:  pos,
	}
}

// Len returns the number of queued indices.
func (q *IndexQueue) Len() int { return len(q.heap) }

// Empty reports whether the queue holds no indices.
func (q *IndexQueue) Empty() bool { return len(q.heap) == 0 }

// Contains reports whether vertex v is currently queued.
func (q *IndexQueue) Contains(v int) bool {
	return v >= 0 && v < len(q.pos) && q.pos[v] >= 0
}

// Push adds vertex v to the queue. Pushing an index that is already
// queued is a no-op; each not-yet-extracted vertex appears exactly once.
func (q *IndexQueue) Push(v int) {
	if q.Contains(v) {
		return
	}
	q.heap = append(q.heap, v)
	q.pos[v] = len(q.heap) - 1
	q.siftUp(len(q.heap) - 1)
}

// Pop removes and returns the index with the smallest key.
// The second return value is false when the queue is empty.
func (q *IndexQueue) Pop() (int, bool) {
	if len(q.heap) == 0 {
		return 0, false
	}
	min := q.heap[0]
	last := len(q.heap) - 1
	q.swap(0, last)
	q.heap = q.heap[:last]
	q.pos[min] = -1
	if last > 0 {
		q.siftDown(0)
	}
	return min, true
}

// Fix restores heap order after the caller lowered the key of vertex v.
// Keys only ever decrease during a shortest-path run, so a sift toward
// the root suffices. Fixing an index that is not queued is a no-op.
func (q *IndexQueue) Fix(v int) {
	if !q.Contains(v) {
		return
	}
	q.siftUp(q.pos[v])
}

func (q *IndexQueue) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.pos[q.heap[i]] = i
	q.pos[q.heap[j]] = j
}

func (q *IndexQueue) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !q.less(q.heap[i], q.heap[parent]) {
			return
		}
		q.swap(i, parent)
		i = parent
	}
}

func (q *IndexQueue) siftDown(i int) {
	n := len(q.heap)
	for {
		smallest := i
		if l := 2*i + 1; l < n && q.less(q.heap[l], q.heap[smallest]) {
			smallest = l
		}
		if r := 2*i + 2; r < n && q.less(q.heap[r], q.heap[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		q.swap(i, smallest)
		i = smallest
	}
}
