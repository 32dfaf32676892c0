package bfs

import (
	"github.com/katalvlaran/gridsearch/grid"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *grid.Grid
	opts  Options
	end   *grid.Node
	queue []*grid.Node
	trace []*grid.Node
}

// BFS runs breadth-first search on g from start towards end, ignoring weights.
// The returned trace lists nodes in dequeue order and ends with end when it
// is reachable. Nodes are left with Visited, Distance (hop count) and Parent
// set; call g.ResetSearchState before running again.
//
// Returns ErrGridNil, ErrNodeNil, ErrForeignNode or ErrWallEndpoint for bad input.
func BFS(g *grid.Grid, start, end *grid.Node, opts ...Option) ([]*grid.Node, error) {
	if err := validate(g, start, end); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		grid:  g,
		opts:  o,
		end:   end,
		queue: make([]*grid.Node, 0, g.Size()),
		trace: make([]*grid.Node, 0, g.Size()),
	}

	// Seed queue with start vertex (no parent)
	start.Distance = 0
	w.enqueue(start, grid.NoNode)
	w.loop()

	return w.trace, nil
}

// validate checks the shared search preconditions.
func validate(g *grid.Grid, start, end *grid.Node) error {
	if g == nil {
		return ErrGridNil
	}
	if start == nil || end == nil {
		return ErrNodeNil
	}
	if !g.Contains(start) || !g.Contains(end) {
		return ErrForeignNode
	}
	if start.Wall || end.Wall {
		return ErrWallEndpoint
	}
	return nil
}

// enqueue marks n visited, records its parent, and adds it to the queue.
// Marking on enqueue keeps every node in the queue at most once.
func (w *walker) enqueue(n *grid.Node, parent grid.NodeID) {
	n.Visited = true
	n.Parent = parent
	w.queue = append(w.queue, n)
}

// loop processes the queue until end is dequeued or the queue drains.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]

		w.trace = append(w.trace, cur)
		w.opts.OnVisit(cur)
		if cur == w.end {
			return
		}
		w.enqueueNeighbors(cur)
	}
}

// enqueueNeighbors enqueues each undiscovered neighbor one hop further out.
func (w *walker) enqueueNeighbors(cur *grid.Node) {
	for _, nb := range w.grid.Neighbors(cur, w.opts.Diagonal) {
		if nb.Visited {
			continue
		}
		nb.Distance = cur.Distance + 1
		w.enqueue(nb, cur.ID())
	}
}
