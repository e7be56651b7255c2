package solver

import "container/heap"

// frontierItem is one scheduled state, ordered by (h, path length, insertion sequence):
// smaller heuristic first, ties broken toward shallower paths, further ties broken by
// insertion order so the frontier is a deterministic total order.
type frontierItem struct {
	h        int
	pathLen  int
	sequence uint64
	state    State
	index    int
}

// frontierHeap implements heap.Interface for a slice of frontierItem. Unlike the corpus's
// PriorityQueue this carries no mutex or condition variable: the search driver is
// single-threaded and cooperative, so there is nothing to block on or signal.
type frontierHeap []*frontierItem

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].h != h[j].h {
		return h[i].h < h[j].h
	}
	if h[i].pathLen != h[j].pathLen {
		return h[i].pathLen < h[j].pathLen
	}
	return h[i].sequence < h[j].sequence
}

func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *frontierHeap) Push(x interface{}) {
	item := x.(*frontierItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[0 : n-1]
	return item
}

// Frontier is the search driver's ordered work queue.
type Frontier struct {
	items frontierHeap
	next  uint64
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{}
}

// Push schedules s with heuristic value h.
func (f *Frontier) Push(h int, s State) {
	item := &frontierItem{h: h, pathLen: len(s.Path), sequence: f.next, state: s}
	f.next++
	heap.Push(&f.items, item)
}

// Len returns the number of scheduled states.
func (f *Frontier) Len() int {
	return f.items.Len()
}

// Pop removes and returns the lowest-ordered state. It panics if the frontier is empty; callers
// must check Len first.
func (f *Frontier) Pop() State {
	item := heap.Pop(&f.items).(*frontierItem)
	return item.state
}
