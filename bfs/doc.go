// Package bfs provides breadth-first search over a grid.Grid, producing the
// order in which cells are examined and leaving hop counts and parent links
// on the nodes for path reconstruction.
//
// What
//
//   - Every move costs one step; Node.Weight is ignored.
//   - The start node is marked visited when enqueued, as is every neighbor,
//     so no cell is queued twice.
//   - The trace lists nodes in dequeue order; it ends at the end node when
//     that node is reachable, otherwise when the queue drains.
//   - Node.Distance holds the hop count from start, Node.Parent the BFS-tree
//     predecessor.
//
// Determinism
//
//	Neighbors are expanded in grid.Grid's fixed order (up, right, down, left,
//	then diagonals), so the trace is fully reproducible.
//
// Complexity (N = cells)
//
//   - Time:   O(N)
//   - Memory: O(N) for the queue and trace
//
// Usage
//
//	g.ResetSearchState()
//	trace, err := bfs.BFS(g, g.Start(), g.End(), bfs.WithDiagonal())
//	if err != nil {
//	    // ErrGridNil, ErrNodeNil, ErrForeignNode or ErrWallEndpoint
//	}
//
// Options
//
//   - WithDiagonal():  8-directional movement.
//   - WithOnVisit(fn): observe each trace entry as it is produced.
package bfs
