package grid

// New constructs a rows×cols Grid with every Node default-initialized:
// no walls, weight 1, unvisited, no endpoints.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		nodes: make([]Node, rows*cols),
		start: NoNode,
		end:   NoNode,
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := &g.nodes[g.index(r, c)]
			n.row, n.col = r, c
			n.resetAll()
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the number of cells.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Node returns the cell at (row, col), or nil when out of bounds.
func (g *Grid) Node(row, col int) *Node {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.nodes[g.index(row, col)]
}

// At returns the cell addressed by id, or nil for NoNode or out-of-bounds handles.
func (g *Grid) At(id NodeID) *Node {
	return g.Node(id.Row, id.Col)
}

// Contains reports whether n is one of g's own Nodes.
func (g *Grid) Contains(n *Node) bool {
	return n != nil && g.At(n.ID()) == n
}

// Start returns the start cell, or nil if none is set.
func (g *Grid) Start() *Node { return g.At(g.start) }

// End returns the end cell, or nil if none is set.
func (g *Grid) End() *Node { return g.At(g.end) }

// SetStart moves the start flag to (row, col), clearing any wall there.
// Out-of-bounds targets and the current end cell are ignored, so the grid
// never holds two starts or a cell that is both start and end.
func (g *Grid) SetStart(row, col int) {
	n := g.Node(row, col)
	if n == nil || n.end {
		return
	}
	if prev := g.Start(); prev != nil {
		prev.start = false
	}
	n.Wall = false
	n.start = true
	g.start = n.ID()
}

// SetEnd moves the end flag to (row, col), clearing any wall there.
// Out-of-bounds targets and the current start cell are ignored.
func (g *Grid) SetEnd(row, col int) {
	n := g.Node(row, col)
	if n == nil || n.start {
		return
	}
	if prev := g.End(); prev != nil {
		prev.end = false
	}
	n.Wall = false
	n.end = true
	g.end = n.ID()
}

// SetWall paints or erases a wall. Endpoints and out-of-bounds cells are left alone.
func (g *Grid) SetWall(row, col int, wall bool) {
	n := g.Node(row, col)
	if n == nil || n.start || n.end {
		return
	}
	n.Wall = wall
}

// SetWeight sets the traversal cost of (row, col).
// Returns ErrBadWeight when w lies outside [1, MaxWeight]; out-of-bounds
// cells are a silent no-op.
func (g *Grid) SetWeight(row, col, w int) error {
	if !ValidWeight(w) {
		return ErrBadWeight
	}
	if n := g.Node(row, col); n != nil {
		n.Weight = w
	}
	return nil
}

// ValidWeight reports whether w is an accepted cell weight.
func ValidWeight(w int) bool {
	return w >= 1 && w <= MaxWeight
}

// Neighbors returns the in-bounds, non-wall cells adjacent to n:
// up, right, down, left, and with diagonal also up-right, down-right,
// down-left, up-left. The order is fixed so traversals are reproducible.
// Complexity: O(1).
func (g *Grid) Neighbors(n *Node, diagonal bool) []*Node {
	if n == nil {
		return nil
	}
	k := 4
	if diagonal {
		k = 8
	}
	out := make([]*Node, 0, k)
	for _, d := range offsets[:k] {
		nb := g.Node(n.row+d[0], n.col+d[1])
		if nb == nil || nb.Wall {
			continue
		}
		out = append(out, nb)
	}
	return out
}

// ResetSearchState soft-resets every Node. Idempotent.
func (g *Grid) ResetSearchState() {
	for i := range g.nodes {
		g.nodes[i].resetSearch()
	}
}

// ClearAll hard-resets every Node, including walls, weights and endpoints.
// Callers re-place start and end afterwards.
func (g *Grid) ClearAll() {
	for i := range g.nodes {
		g.nodes[i].resetAll()
	}
	g.start, g.end = NoNode, NoNode
}

// ClearWalls removes every wall.
func (g *Grid) ClearWalls() {
	for i := range g.nodes {
		g.nodes[i].Wall = false
	}
}

// ClearWeights resets every weight to WeightDefault.
func (g *Grid) ClearWeights() {
	for i := range g.nodes {
		g.nodes[i].Weight = WeightDefault
	}
}

// index maps (row, col) to a row-major index.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}
