package grid

import (
	"strconv"
	"strings"
)

// String renders the grid as ASCII, one line per row:
//
//	#  wall        S  start     E  end
//	*  on path     .  visited   1-9 weight (capped at 9)
//
// Open cells with default weight render as a space.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			b.WriteByte(g.nodes[g.index(r, c)].glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (n *Node) glyph() byte {
	switch {
	case n.start:
		return 'S'
	case n.end:
		return 'E'
	case n.Wall:
		return '#'
	case n.OnPath:
		return '*'
	case n.Visited:
		return '.'
	case n.Weight > WeightDefault:
		return strconv.Itoa(min(n.Weight, 9))[0]
	}
	return ' '
}
