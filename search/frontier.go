package search

import "container/heap"

// frontierItem is a cell index with its priority and insertion sequence.
type frontierItem struct {
	idx  int
	prio int
	seq  int
}

// frontier is a min-heap ordered by (prio, seq): among equal priorities the
// earliest-pushed item is popped first, which makes every priority-driven
// search deterministic. Superseded entries stay in the heap and are skipped
// by the caller once the cell is settled ("lazy decrease-key").
type frontier struct {
	items []frontierItem
	next  int
}

// Len returns the number of items in the heap.
func (f *frontier) Len() int { return len(f.items) }

// Less orders by priority, then by insertion sequence.
func (f *frontier) Less(i, j int) bool {
	if f.items[i].prio != f.items[j].prio {
		return f.items[i].prio < f.items[j].prio
	}
	return f.items[i].seq < f.items[j].seq
}

// Swap swaps two elements in the heap.
func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

// Push is called by heap.Push; x must be a frontierItem.
func (f *frontier) Push(x interface{}) { f.items = append(f.items, x.(frontierItem)) }

// Pop is called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := f.items
	n := len(old)
	item := old[n-1]
	f.items = old[:n-1]

	return item
}

// push adds cell idx with the given priority.
func (f *frontier) push(idx, prio int) {
	heap.Push(f, frontierItem{idx: idx, prio: prio, seq: f.next})
	f.next++
}

// pop removes the minimum item.
func (f *frontier) pop() frontierItem {
	return heap.Pop(f).(frontierItem)
}
