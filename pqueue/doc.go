// Package pqueue provides a generic min-priority queue with "insert again"
// decrease-key semantics, as used by Dijkstra and A*.
//
// What:
//
//   - Enqueue always inserts; an item may sit in the queue many times with
//     different priorities.
//   - Dequeue returns the entry with the smallest priority. Equal priorities
//     leave in insertion order (FIFO), so repeated runs over the same input
//     produce identical sequences.
//   - Consumers skip stale entries themselves (e.g. by checking a visited flag
//     on the dequeued item); the queue never inspects items.
//
// Complexity:
//
//   - Enqueue, Dequeue: O(log N), N = entries currently held (duplicates included).
//   - IsEmpty, Len:     O(1).
package pqueue
