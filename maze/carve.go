package maze

import (
	"github.com/katalvlaran/gridsearch/grid"
)

// cell is an odd-coordinate maze room.
type cell struct{ row, col int }

// steps reach the rooms two cells away; the cell in between is the corridor.
var steps = [4][2]int{{0, 2}, {2, 0}, {0, -2}, {-2, 0}}

// Backtracker fills g with walls and carves a perfect maze with a randomized
// depth-first walk over the odd-coordinate rooms, starting at (1, 1).
// Every room is reached exactly once, so the open cells form a spanning tree
// and any two rooms are joined by exactly one route.
//
// Like Generate it hard-resets g first and restores start and end afterwards.
func Backtracker(g *grid.Grid, start, end *grid.Node, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	cfg := buildOptions(opts)
	s, e := handle(start), handle(end)

	fill(g)
	if g.Rows() >= 3 && g.Cols() >= 3 {
		g.Node(1, 1).Wall = false
		stack := []cell{{1, 1}}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			next := closedRooms(g, cur)
			if len(next) == 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			nb := next[cfg.Rand.Intn(len(next))]
			carve(g, cur, nb)
			stack = append(stack, nb)
		}
	}
	restore(g, s, e)

	return nil
}

// Prim fills g with walls and grows a perfect maze from (1, 1) by randomized
// Prim's algorithm: a random frontier room is joined to a random already
// open neighbor room until no frontier remains.
//
// Prim mazes branch more and have shorter dead ends than Backtracker's.
func Prim(g *grid.Grid, start, end *grid.Node, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	cfg := buildOptions(opts)
	s, e := handle(start), handle(end)

	fill(g)
	if g.Rows() >= 3 && g.Cols() >= 3 {
		g.Node(1, 1).Wall = false
		frontier := closedRooms(g, cell{1, 1})
		for len(frontier) > 0 {
			i := cfg.Rand.Intn(len(frontier))
			c := frontier[i]
			frontier = append(frontier[:i], frontier[i+1:]...)
			if !g.Node(c.row, c.col).Wall {
				continue // reached twice from the frontier
			}
			open := openRooms(g, c)
			carve(g, open[cfg.Rand.Intn(len(open))], c)
			frontier = append(frontier, closedRooms(g, c)...)
		}
	}
	restore(g, s, e)

	return nil
}

// fill hard-resets g and walls every cell.
func fill(g *grid.Grid) {
	g.ClearAll()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			g.Node(r, c).Wall = true
		}
	}
}

// interior reports whether (r, c) is strictly inside the border.
func interior(g *grid.Grid, r, c int) bool {
	return r > 0 && r < g.Rows()-1 && c > 0 && c < g.Cols()-1
}

// closedRooms lists the still-walled rooms two steps from c.
func closedRooms(g *grid.Grid, c cell) []cell {
	return rooms(g, c, true)
}

// openRooms lists the carved rooms two steps from c.
func openRooms(g *grid.Grid, c cell) []cell {
	return rooms(g, c, false)
}

func rooms(g *grid.Grid, c cell, wall bool) []cell {
	var out []cell
	for _, d := range steps {
		r, col := c.row+d[0], c.col+d[1]
		if interior(g, r, col) && g.Node(r, col).Wall == wall {
			out = append(out, cell{r, col})
		}
	}
	return out
}

// carve opens room to and the corridor between from and to.
func carve(g *grid.Grid, from, to cell) {
	g.Node((from.row+to.row)/2, (from.col+to.col)/2).Wall = false
	g.Node(to.row, to.col).Wall = false
}
