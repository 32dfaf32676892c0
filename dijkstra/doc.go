// Package dijkstra computes weighted shortest routes on a grid.Grid.
//
// What
//
//   - Moving into a cell costs that cell's Weight; walls are impassable.
//   - Distance on each finalized node is the minimum total weight of any route
//     from start through open cells (the start itself costs nothing).
//   - The trace lists nodes in finalization order and stops at end.
//
// Movement is restricted to the four orthogonal directions.
//
// Usage
//
//	g.ResetSearchState()
//	trace, err := dijkstra.Dijkstra(g, g.Start(), g.End())
//	if err != nil {
//	    // ErrGridNil, ErrNodeNil, ErrForeignNode or ErrWallEndpoint
//	}
//	fmt.Println("cost:", g.End().Distance)
package dijkstra
