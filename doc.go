// Package gridsearch is a playground for classic graph search on a 2D
// weighted grid: place a start and an end, paint walls and costly terrain or
// generate a maze, then run BFS, DFS, Dijkstra or A* and replay the order in
// which cells were examined together with the route found.
//
// The engine performs no timing or drawing. Every search returns its full
// visitation trace synchronously; a renderer replays it at whatever pace it
// likes.
//
// Packages:
//
//	grid/      Node and Grid: terrain, endpoints, neighbors, resets, ASCII view
//	pqueue/    generic min-priority queue with FIFO tie-breaking
//	bfs/       breadth-first search (hop-optimal), optional diagonals
//	dfs/       depth-first search (some path), optional diagonals
//	dijkstra/  weight-optimal search, 4-directional
//	astar/     A* with the Manhattan heuristic, 4-directional
//	path/      route reconstruction from parent handles
//	maze/      recursive division, backtracker, Prim and Kruskal mazes;
//	           random walls and terrain
//	search/    run any algorithm by name and collect the result
//	layout/    sparse JSON snapshot of a grid's static state
//
// The gridsearchd command (cmd/gridsearchd) serves all of this over a gin
// REST API with per-client grid sessions and layouts saved to Redis or
// memory.
//
// Quick example:
//
//	g, _ := grid.New(21, 31)
//	g.SetStart(1, 1)
//	g.SetEnd(19, 29)
//	_ = maze.Generate(g, g.Start(), g.End(), maze.WithSeed(42))
//	res, _ := search.Run(g, search.AStar)
//	fmt.Print(g) // walls, visited cells and the route
//	_ = res.Cost
package gridsearch
