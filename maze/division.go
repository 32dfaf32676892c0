package maze

import (
	"math/rand"

	"github.com/katalvlaran/gridsearch/grid"
)

// Generate carves a maze into g by recursive division.
//
// Steps:
//  1. remember the start and end coordinates, then hard-reset g (walls,
//     weights, search state and endpoint flags are cleared);
//  2. wall the outer border;
//  3. split the interior: a wider chamber gets a vertical wall, a taller one a
//     horizontal wall, a square one a vertical wall. Walls lie on even
//     indices and their single passage on an odd index, so a later wall can
//     never seal an earlier passage. A chamber with no even line left to
//     split is left open;
//  4. restore start and end via SetStart and SetEnd, which also clears any
//     wall the maze put on them.
//
// Every open interior cell ends up in one 4-connected region. Grids with
// fewer than 3 rows or columns are all border and get no interior walls.
// start and end may be nil; nothing is restored for a nil endpoint.
func Generate(g *grid.Grid, start, end *grid.Node, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	cfg := buildOptions(opts)
	s, e := handle(start), handle(end)

	g.ClearAll()
	wallBorder(g)
	if g.Rows() >= 3 && g.Cols() >= 3 {
		d := divider{g: g, rng: cfg.Rand}
		d.divide(1, g.Rows()-2, 1, g.Cols()-2)
	}
	restore(g, s, e)

	return nil
}

// divider carries the grid and randomness through the recursion.
type divider struct {
	g   *grid.Grid
	rng *rand.Rand
}

// divide splits the open chamber rows [r0, r1] × cols [c0, c1].
// r0 and c0 are always odd.
func (d *divider) divide(r0, r1, c0, c1 int) {
	width, height := c1-c0+1, r1-r0+1
	vertical := width >= height

	for attempt := 0; attempt < 2; attempt++ {
		if vertical {
			if wc := evenIn(d.rng, c0+1, c1-1); wc >= 0 {
				gap := oddIn(d.rng, r0, r1)
				for r := r0; r <= r1; r++ {
					if r != gap {
						d.g.Node(r, wc).Wall = true
					}
				}
				d.divide(r0, r1, c0, wc-1)
				d.divide(r0, r1, wc+1, c1)
				return
			}
		} else {
			if wr := evenIn(d.rng, r0+1, r1-1); wr >= 0 {
				gap := oddIn(d.rng, c0, c1)
				for c := c0; c <= c1; c++ {
					if c != gap {
						d.g.Node(wr, c).Wall = true
					}
				}
				d.divide(r0, wr-1, c0, c1)
				d.divide(wr+1, r1, c0, c1)
				return
			}
		}
		vertical = !vertical
	}
}

// wallBorder walls every cell on the outer ring.
func wallBorder(g *grid.Grid) {
	last := g.Rows() - 1
	for c := 0; c < g.Cols(); c++ {
		g.Node(0, c).Wall = true
		g.Node(last, c).Wall = true
	}
	last = g.Cols() - 1
	for r := 0; r < g.Rows(); r++ {
		g.Node(r, 0).Wall = true
		g.Node(r, last).Wall = true
	}
}

// handle returns n's coordinates, or grid.NoNode for nil.
func handle(n *grid.Node) grid.NodeID {
	if n == nil {
		return grid.NoNode
	}
	return n.ID()
}

// restore re-places the endpoints after a hard reset.
func restore(g *grid.Grid, start, end grid.NodeID) {
	if start.Valid() {
		g.SetStart(start.Row, start.Col)
	}
	if end.Valid() {
		g.SetEnd(end.Row, end.Col)
	}
}
