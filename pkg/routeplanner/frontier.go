package routeplanner

import (
	"container/heap"
)

// frontier is the open set of the search: a min-heap of arena indexes keyed
// by cumulative cost. Ties are broken by insertion order so the first-found
// minimum wins, and stale entries left behind by label corrections are
// skipped on pop.
type frontierEntry struct {
	node int
	cost float64
	seq  int
}

type frontier struct {
	entries []frontierEntry
	counter int
}

func (f *frontier) push(node int, cost float64) {
	f.counter++
	heap.Push(f, frontierEntry{node: node, cost: cost, seq: f.counter})
}

func (f *frontier) Len() int {
	return len(f.entries)
}

func (f *frontier) Less(i, j int) bool {
	if f.entries[i].cost != f.entries[j].cost {
		return f.entries[i].cost < f.entries[j].cost
	}

	return f.entries[i].seq < f.entries[j].seq
}

func (f *frontier) Swap(i, j int) {
	f.entries[i], f.entries[j] = f.entries[j], f.entries[i]
}

func (f *frontier) Push(x any) {
	f.entries = append(f.entries, x.(frontierEntry))
}

func (f *frontier) Pop() any {
	entry := f.entries[len(f.entries)-1]
	f.entries = f.entries[:len(f.entries)-1]

	return entry
}
