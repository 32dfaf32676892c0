// Package astar defines sentinel errors, options and the heuristic used by
// A* search over a grid.Grid.
package astar

import (
	"errors"

	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors returned by AStar.
var (
	ErrGridNil      = errors.New("astar: grid is nil")
	ErrNodeNil      = errors.New("astar: start or end node is nil")
	ErrForeignNode  = errors.New("astar: node does not belong to grid")
	ErrWallEndpoint = errors.New("astar: start or end node is a wall")
)

// Options configures AStar.
type Options struct {
	// OnVisit is called on each node as it is finalized.
	OnVisit func(n *grid.Node)
}

// Option is a functional option for AStar.
type Option func(*Options)

// WithOnVisit registers a finalization hook.
func WithOnVisit(fn func(n *grid.Node)) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
//
// It never overstates the remaining cost under 4-directional movement with
// weights ≥ 1, which is the only movement AStar performs.
func Manhattan(a, b *grid.Node) int {
	return abs(a.Row()-b.Row()) + abs(a.Col()-b.Col())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
