// Package path turns the Parent handles left on a grid by a search into an
// ordered route.
//
// Any of bfs, dfs, dijkstra or astar may precede Reconstruct; the returned
// slice runs from start to end and every node on it is flagged OnPath for
// rendering. Found distinguishes a real route from the single-node fragment
// returned when end was never reached.
package path
