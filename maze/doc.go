// Package maze mutates a grid.Grid's terrain: it carves mazes and scatters
// random walls or weighted terrain.
//
// Generators:
//
//   - Generate: recursive division. Starts from an open board with a walled
//     border and repeatedly splits chambers with a wall holding one passage.
//   - Backtracker: randomized depth-first carving from a fully walled board.
//   - Prim: randomized Prim carving from a fully walled board.
//   - Kruskal: randomized Kruskal carving over a disjoint-set of rooms.
//
// All of them hard-reset the grid (weights included), keep the maze's open
// cells 4-connected, and restore the start and end cells they were given.
// Rooms live on odd coordinates, so placing endpoints on odd cells keeps them
// inside the connected maze.
//
// Terrain:
//
//   - ScatterWalls re-rolls walls at a density in [0, 1].
//   - ScatterWeights paints a terrain weight at a density in [0, 1].
//
// Randomness comes from WithRand or WithSeed; the same seed on the same
// dimensions always yields the same board. The generators assume exclusive
// access to the grid.
package maze
