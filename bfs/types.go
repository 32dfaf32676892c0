// Package bfs provides tunable options and error definitions
// for breadth-first search over a grid.Grid.
package bfs

import (
	"errors"

	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors for BFS input validation.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrNodeNil is returned when start or end is nil.
	ErrNodeNil = errors.New("bfs: start or end node is nil")

	// ErrForeignNode is returned when start or end does not belong to the grid.
	ErrForeignNode = errors.New("bfs: node does not belong to grid")

	// ErrWallEndpoint is returned when start or end is a wall.
	ErrWallEndpoint = errors.New("bfs: start or end node is a wall")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Diagonal expands 8 neighbors instead of 4.
	Diagonal bool

	// OnVisit is called each time a node is dequeued and appended to the trace.
	OnVisit func(n *grid.Node)
}

// DefaultOptions returns Options with 4-directional movement and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Diagonal: false,
		OnVisit:  func(*grid.Node) {},
	}
}

// WithDiagonal enables 8-directional movement.
func WithDiagonal() Option {
	return func(o *Options) {
		o.Diagonal = true
	}
}

// WithOnVisit registers a callback to run on every trace entry.
func WithOnVisit(fn func(n *grid.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
