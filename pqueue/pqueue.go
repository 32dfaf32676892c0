package pqueue

import "container/heap"

// entry pairs an item with its priority and insertion sequence.
type entry[T any] struct {
	item     T
	priority int
	seq      uint64
}

// entryHeap is a min-heap of entries ordered by (priority, seq).
type entryHeap[T any] []entry[T]

var _ heap.Interface = (*entryHeap[int])(nil)

// Len returns the number of entries in the heap.
func (h entryHeap[T]) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence.
func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two entries.
func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push.
func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop removes the last entry; called by heap.Pop.
func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	var zero entry[T]
	old[n-1] = zero // don't pin the item for the GC
	*h = old[:n-1]

	return e
}

// Queue is a min-priority queue of items of type T.
// The zero value is ready to use. Not safe for concurrent use.
type Queue[T any] struct {
	h   entryHeap[T]
	seq uint64
}

// New returns an empty Queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue inserts item with the given priority unconditionally.
func (q *Queue[T]) Enqueue(item T, priority int) {
	heap.Push(&q.h, entry[T]{item: item, priority: priority, seq: q.seq})
	q.seq++
}

// Dequeue removes and returns the entry with the smallest priority.
// ok is false when the queue is empty.
func (q *Queue[T]) Dequeue() (item T, priority int, ok bool) {
	if len(q.h) == 0 {
		return item, 0, false
	}
	e := heap.Pop(&q.h).(entry[T])
	return e.item, e.priority, true
}

// IsEmpty reports whether no entries remain.
func (q *Queue[T]) IsEmpty() bool { return len(q.h) == 0 }

// Len returns the number of entries, duplicates included.
func (q *Queue[T]) Len() int { return len(q.h) }
