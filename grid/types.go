// Package grid defines core types, terrain constants, and sentinel errors
// for the grid package of github.com/katalvlaran/gridsearch.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid was requested with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrBadWeight indicates a traversal weight outside [1, MaxWeight].
	ErrBadWeight = errors.New("grid: weight must be within [1, MaxWeight]")
)

// Infinity is the sentinel "not yet reached" value for Distance, G and F.
const Infinity = math.MaxInt

// Terrain weights understood by renderers. Any Weight in [1, MaxWeight] is valid.
const (
	WeightDefault = 1
	WeightMud     = 5
	WeightWater   = 10
)

// MaxWeight caps a single cell's weight. Path costs are sums of weights, so
// the cap keeps every reachable cost well below Infinity.
const MaxWeight = 1 << 20

// NodeID addresses a Node inside its Grid by row and column.
type NodeID struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoNode is the zero handle: no parent, no endpoint.
var NoNode = NodeID{Row: -1, Col: -1}

// Valid reports whether id refers to a cell rather than NoNode.
func (id NodeID) Valid() bool {
	return id.Row >= 0 && id.Col >= 0
}

// Node is a single grid cell.
//
// Wall and Weight are static terrain and may be mutated directly by input
// handlers; never set Wall on a start or end Node (use Grid.SetWall, which
// refuses). The remaining exported fields are search-local and cleared by
// Grid.ResetSearchState.
type Node struct {
	row, col int
	start    bool
	end      bool

	Wall   bool // blocks traversal
	Weight int  // cost of entering this cell, in [1, MaxWeight]

	Visited  bool   // finalized (or, for BFS, discovered) in the current run
	OnPath   bool   // set by path reconstruction
	Distance int    // BFS hop count / Dijkstra cost; Infinity when unreached
	G        int    // A* cost from start; Infinity when unreached
	H        int    // A* heuristic to end; 0 until first reached
	F        int    // G + H; Infinity when unreached
	Parent   NodeID // predecessor in the current search tree, NoNode if none
}

// Row returns the node's row index.
func (n *Node) Row() int { return n.row }

// Col returns the node's column index.
func (n *Node) Col() int { return n.col }

// ID returns the node's handle.
func (n *Node) ID() NodeID { return NodeID{Row: n.row, Col: n.col} }

// IsStart reports whether n is the grid's start cell.
func (n *Node) IsStart() bool { return n.start }

// IsEnd reports whether n is the grid's end cell.
func (n *Node) IsEnd() bool { return n.end }

// resetSearch clears the per-run fields.
func (n *Node) resetSearch() {
	n.Visited = false
	n.OnPath = false
	n.Distance = Infinity
	n.G = Infinity
	n.H = 0
	n.F = Infinity
	n.Parent = NoNode
}

// resetAll restores n to its freshly constructed state.
func (n *Node) resetAll() {
	n.Wall = false
	n.Weight = WeightDefault
	n.start = false
	n.end = false
	n.resetSearch()
}

// offsets are (dRow, dCol) pairs in neighbor order: the first four are
// orthogonal, the last four diagonal.
var offsets = [8][2]int{
	{-1, 0}, {0, 1}, {1, 0}, {0, -1},
	{-1, 1}, {1, 1}, {1, -1}, {-1, -1},
}

// Grid is a rows×cols board of Nodes with start/end bookkeeping.
// Its dimensions are fixed for its lifetime.
type Grid struct {
	rows, cols int
	nodes      []Node // row-major
	start, end NodeID
}
