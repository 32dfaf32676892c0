// Package grid models a fixed-size 2D board of weighted cells that search
// algorithms traverse and maze generators carve.
//
// What:
//
//   - Node holds one cell: immutable coordinates, static terrain (Wall, Weight),
//     endpoint flags owned by the Grid, and per-run search bookkeeping
//     (Visited, OnPath, Distance, G, H, F, Parent).
//   - Grid owns rows×cols Nodes for its whole lifetime, tracks the single start
//     and end cell, and answers neighbor queries in a fixed order.
//   - Parent links are NodeID handles into the Grid, never pointers, so the
//     search tree is acyclic by construction and trivially serializable.
//
// Resets:
//
//   - ResetSearchState (soft): clears Visited, OnPath, Distance, G, H, F, Parent.
//     Walls, weights and endpoints survive. Call it before every search run.
//   - ClearAll (hard): also clears walls, weights and both endpoints.
//   - ClearWalls / ClearWeights: clear one kind of terrain only.
//
// Neighbor order (reproducible traversal):
//
//	up, right, down, left, then up-right, down-right, down-left, up-left
//
// Out-of-bounds coordinates are never an error: Node returns nil and the
// mutating helpers are silent no-ops, so painting tools may probe edges freely.
//
// Concurrency: a Grid is not safe for concurrent use. Callers serialize
// searches and maze generation over the same Grid.
//
// Complexity:
//
//   - Node, At, SetStart, SetEnd, SetWall, SetWeight: O(1).
//   - Neighbors: O(1) (at most 8 cells).
//   - ResetSearchState, ClearAll, OpenRegions, String: O(R×C).
package grid
