// Package layout captures the static part of a grid.Grid (dimensions,
// endpoints, walls, weights) as a sparse, JSON-friendly Snapshot and
// rebuilds grids from it. Search-local state is never captured.
package layout

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsearch/grid"
)

// ErrBadSnapshot is wrapped by every Validate failure.
var ErrBadSnapshot = errors.New("layout: invalid snapshot")

// WeightedCell is a cell whose weight differs from grid.WeightDefault.
type WeightedCell struct {
	grid.NodeID
	Weight int `json:"weight"`
}

// Snapshot is the minimal persisted form of a grid. Cells that are open
// and have the default weight are omitted.
type Snapshot struct {
	Rows    int            `json:"rows"`
	Cols    int            `json:"cols"`
	Start   *grid.NodeID   `json:"start,omitempty"`
	End     *grid.NodeID   `json:"end,omitempty"`
	Walls   []grid.NodeID  `json:"walls,omitempty"`
	Weights []WeightedCell `json:"weights,omitempty"`
}

// Capture records g's terrain and endpoints in row-major order.
func Capture(g *grid.Grid) Snapshot {
	s := Snapshot{Rows: g.Rows(), Cols: g.Cols()}
	if n := g.Start(); n != nil {
		id := n.ID()
		s.Start = &id
	}
	if n := g.End(); n != nil {
		id := n.ID()
		s.End = &id
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			n := g.Node(r, c)
			if n.Wall {
				s.Walls = append(s.Walls, n.ID())
			}
			if n.Weight != grid.WeightDefault {
				s.Weights = append(s.Weights, WeightedCell{NodeID: n.ID(), Weight: n.Weight})
			}
		}
	}
	return s
}

// Validate checks dimensions, bounds, weights and the endpoint invariants:
// start and end differ and neither is listed as a wall.
func (s Snapshot) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrBadSnapshot, s.Rows, s.Cols)
	}
	in := func(id grid.NodeID) bool {
		return id.Row >= 0 && id.Row < s.Rows && id.Col >= 0 && id.Col < s.Cols
	}
	if s.Start != nil && !in(*s.Start) {
		return fmt.Errorf("%w: start %v out of bounds", ErrBadSnapshot, *s.Start)
	}
	if s.End != nil && !in(*s.End) {
		return fmt.Errorf("%w: end %v out of bounds", ErrBadSnapshot, *s.End)
	}
	if s.Start != nil && s.End != nil && *s.Start == *s.End {
		return fmt.Errorf("%w: start and end share %v", ErrBadSnapshot, *s.Start)
	}
	for _, w := range s.Walls {
		if !in(w) {
			return fmt.Errorf("%w: wall %v out of bounds", ErrBadSnapshot, w)
		}
		if (s.Start != nil && w == *s.Start) || (s.End != nil && w == *s.End) {
			return fmt.Errorf("%w: wall on endpoint %v", ErrBadSnapshot, w)
		}
	}
	for _, wc := range s.Weights {
		if !in(wc.NodeID) {
			return fmt.Errorf("%w: weight %v out of bounds", ErrBadSnapshot, wc.NodeID)
		}
		if !grid.ValidWeight(wc.Weight) {
			return fmt.Errorf("%w: weight %d at %v", ErrBadSnapshot, wc.Weight, wc.NodeID)
		}
	}
	return nil
}

// Restore validates s and builds a fresh grid from it.
func (s Snapshot) Restore() (*grid.Grid, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	g, err := grid.New(s.Rows, s.Cols)
	if err != nil {
		return nil, err
	}
	if s.Start != nil {
		g.SetStart(s.Start.Row, s.Start.Col)
	}
	if s.End != nil {
		g.SetEnd(s.End.Row, s.End.Col)
	}
	for _, w := range s.Walls {
		g.SetWall(w.Row, w.Col, true)
	}
	for _, wc := range s.Weights {
		if err = g.SetWeight(wc.Row, wc.Col, wc.Weight); err != nil {
			return nil, err
		}
	}
	return g, nil
}
