// Package search runs one of the grid searches by name.
//
// Algorithm is a closed enumeration (BFS, DFS, Dijkstra, AStar); Run
// dispatches on it once, resets the grid beforehand and reconstructs the
// path afterwards, so callers that only need "run X and show me the result"
// never touch the individual algorithm packages.
//
//	res, err := search.Run(g, search.AStar)
//	if err != nil { ... }
//	if res.Found {
//	    fmt.Println(res.Cost, len(res.Trace))
//	}
//
// Algorithm names round-trip through text ("bfs", "dfs", "dijkstra",
// "astar"), so the type can sit directly in JSON request bodies.
package search
