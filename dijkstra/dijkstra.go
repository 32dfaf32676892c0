package dijkstra

import (
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/pqueue"
)

// Dijkstra finalizes nodes of g in order of increasing weighted distance from
// start until end is finalized or no reachable node remains.
//
// Returns the trace of finalized nodes. Each finalized node holds its optimal
// Distance and a Parent on one cheapest route. The grid must be soft-reset
// (g.ResetSearchState) before every run.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrGridNil).
//  2. start and end must be non-nil (ErrNodeNil).
//  3. both must belong to g (ErrForeignNode).
//  4. neither may be a wall (ErrWallEndpoint).
//
// Stale queue entries are skipped on dequeue (lazy decrease-key).
// Time O(N log N) for N cells; memory O(N).
func Dijkstra(g *grid.Grid, start, end *grid.Node, opts ...Option) ([]*grid.Node, error) {
	// 1) Validate input
	if g == nil {
		return nil, ErrGridNil
	}
	if start == nil || end == nil {
		return nil, ErrNodeNil
	}
	if !g.Contains(start) || !g.Contains(end) {
		return nil, ErrForeignNode
	}
	if start.Wall || end.Wall {
		return nil, ErrWallEndpoint
	}

	// 2) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{
		g:       g,
		options: cfg,
		end:     end,
		pq:      pqueue.New[*grid.Node](),
		trace:   make([]*grid.Node, 0, g.Size()),
	}
	r.init(start)
	r.process()

	return r.trace, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *grid.Grid                // the grid being searched
	options Options                   // configuration
	end     *grid.Node                // target node
	pq      *pqueue.Queue[*grid.Node] // min-queue keyed by Distance
	trace   []*grid.Node              // finalization order
}

// init seeds the queue with start at distance zero.
func (r *runner) init(start *grid.Node) {
	start.Distance = 0
	r.pq.Enqueue(start, 0)
}

// process is the core loop: pop the cheapest node, skip it if stale,
// finalize it, stop at end, otherwise relax its neighbors.
func (r *runner) process() {
	for !r.pq.IsEmpty() {
		u, _, _ := r.pq.Dequeue()

		// Already finalized through a cheaper entry.
		if u.Visited {
			continue
		}

		u.Visited = true
		r.trace = append(r.trace, u)
		if r.options.OnVisit != nil {
			r.options.OnVisit(u)
		}
		if u == r.end {
			return
		}

		r.relax(u)
	}
}

// relax improves Distance and Parent of every open, unfinalized neighbor of u
// reachable more cheaply through u, enqueueing each improvement.
func (r *runner) relax(u *grid.Node) {
	for _, v := range r.g.Neighbors(u, false) {
		if v.Visited {
			continue
		}
		candidate := u.Distance + v.Weight
		if candidate >= v.Distance {
			continue
		}
		v.Distance = candidate
		v.Parent = u.ID()
		r.pq.Enqueue(v, candidate)
	}
}
