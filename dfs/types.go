// Package dfs defines options and sentinel errors for depth-first search
// over a grid.Grid.
package dfs

import (
	"errors"

	"github.com/katalvlaran/gridsearch/grid"
)

var (
	// ErrGridNil is returned when a nil *grid.Grid is passed to DFS.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrNodeNil is returned when start or end is nil.
	ErrNodeNil = errors.New("dfs: start or end node is nil")

	// ErrForeignNode indicates that start or end is not a node of the grid.
	ErrForeignNode = errors.New("dfs: node does not belong to grid")

	// ErrWallEndpoint indicates that start or end is a wall.
	ErrWallEndpoint = errors.New("dfs: start or end node is a wall")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, end, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Diagonal expands 8 neighbors instead of 4.
	Diagonal bool

	// OnVisit, if non-nil, is invoked when a node is popped for the first time.
	OnVisit func(n *grid.Node)
}

// DefaultOptions returns a DFSOptions struct with:
//   - 4-directional movement
//   - no visit hook
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Diagonal: false,
		OnVisit:  nil,
	}
}

// WithDiagonal returns an Option that enables 8-directional movement.
func WithDiagonal() Option {
	return func(o *DFSOptions) {
		o.Diagonal = true
	}
}

// WithOnVisit returns an Option that installs fn as a finalization hook.
func WithOnVisit(fn func(n *grid.Node)) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}
