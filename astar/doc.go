// Package astar implements A* search on a grid.Grid with the Manhattan
// heuristic.
//
// A* follows the same relaxation as package dijkstra but orders its open set
// by F = G + H. Because Manhattan distance is admissible for 4-directional
// movement with weights ≥ 1, the cost of the route A* finds equals the
// Dijkstra cost for the same grid and endpoints, while typically finalizing
// fewer cells.
//
// Movement is 4-directional only. Diagonal search would need a different
// heuristic (Chebyshev or octile) and is not offered.
//
//	g.ResetSearchState()
//	trace, err := astar.AStar(g, g.Start(), g.End())
//	// g.End().G is the route cost when g.End().Visited
package astar
