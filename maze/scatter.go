package maze

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/grid"
)

// ScatterWalls re-rolls the wall flag of every non-endpoint cell: each
// becomes a wall with probability density and open otherwise.
// Weights, endpoints and search state are left untouched.
func ScatterWalls(g *grid.Grid, density float64, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	if !(density >= 0 && density <= 1) {
		return fmt.Errorf("%w: got %v", ErrBadDensity, density)
	}
	cfg := buildOptions(opts)

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			n := g.Node(r, c)
			if n.IsStart() || n.IsEnd() {
				continue
			}
			n.Wall = cfg.Rand.Float64() < density
		}
	}
	return nil
}

// ScatterWeights assigns weight to each open cell with probability density.
// Other cells keep their weight. weight must lie in [1, grid.MaxWeight].
func ScatterWeights(g *grid.Grid, density float64, weight int, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	if !(density >= 0 && density <= 1) {
		return fmt.Errorf("%w: got %v", ErrBadDensity, density)
	}
	if !grid.ValidWeight(weight) {
		return fmt.Errorf("maze: %w: got %d", grid.ErrBadWeight, weight)
	}
	cfg := buildOptions(opts)

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			n := g.Node(r, c)
			if n.Wall {
				continue
			}
			if cfg.Rand.Float64() < density {
				n.Weight = weight
			}
		}
	}
	return nil
}
