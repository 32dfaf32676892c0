package astar

import (
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/pqueue"
)

// AStar searches g from start toward end, expanding nodes in order of
// F = G + H where G is the weighted cost from start and H the Manhattan
// distance to end. Returns the trace of finalized nodes.
//
// Relaxation mirrors dijkstra: a node may be enqueued several times, stale
// entries are skipped once the node is finalized. H is computed once, when a
// node is first reached. On return every finalized node carries G, H, F and a
// Parent handle; end.G is the optimal cost when end was reached.
//
// The grid must be soft-reset (g.ResetSearchState) before each call.
func AStar(g *grid.Grid, start, end *grid.Node, opts ...Option) ([]*grid.Node, error) {
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

	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &solver{
		g:     g,
		cfg:   cfg,
		end:   end,
		open:  pqueue.New[*grid.Node](),
		trace: make([]*grid.Node, 0, g.Size()),
	}
	s.seed(start)
	s.run()

	return s.trace, nil
}

// solver holds per-run state.
type solver struct {
	g     *grid.Grid
	cfg   Options
	end   *grid.Node
	open  *pqueue.Queue[*grid.Node]
	trace []*grid.Node
}

func (s *solver) seed(start *grid.Node) {
	start.G = 0
	start.H = Manhattan(start, s.end)
	start.F = start.H
	s.open.Enqueue(start, start.F)
}

func (s *solver) run() {
	for {
		cur, _, ok := s.open.Dequeue()
		if !ok {
			return
		}
		if cur.Visited {
			continue
		}

		cur.Visited = true
		s.trace = append(s.trace, cur)
		if s.cfg.OnVisit != nil {
			s.cfg.OnVisit(cur)
		}
		if cur == s.end {
			return
		}

		for _, nb := range s.g.Neighbors(cur, false) {
			if nb.Visited {
				continue
			}
			if nb.G == grid.Infinity {
				nb.H = Manhattan(nb, s.end)
			}
			candidate := cur.G + nb.Weight
			if candidate < nb.G {
				nb.G = candidate
				nb.F = candidate + nb.H
				nb.Parent = cur.ID()
				s.open.Enqueue(nb, nb.F)
			}
		}
	}
}
