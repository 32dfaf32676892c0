// Package dijkstra defines sentinel errors and configuration options
// for Dijkstra's shortest-path search on a weighted grid.Grid.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGridNil indicates that a nil *grid.Grid was passed to Dijkstra.
	ErrGridNil = errors.New("dijkstra: grid is nil")

	// ErrNodeNil indicates that start or end is nil.
	ErrNodeNil = errors.New("dijkstra: start or end node is nil")

	// ErrForeignNode indicates that start or end does not belong to the grid.
	ErrForeignNode = errors.New("dijkstra: node does not belong to grid")

	// ErrWallEndpoint indicates that start or end is a wall.
	ErrWallEndpoint = errors.New("dijkstra: start or end node is a wall")
)

// Options configures the behavior of the Dijkstra algorithm.
// Movement is always 4-directional.
type Options struct {
	OnVisit func(n *grid.Node) // called on each finalized node
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithOnVisit registers a hook invoked as each node is finalized.
func WithOnVisit(fn func(n *grid.Node)) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// DefaultOptions returns an Options struct with no hooks.
func DefaultOptions() Options {
	return Options{OnVisit: nil}
}
