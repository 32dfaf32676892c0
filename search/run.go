package search

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/dfs"
	"github.com/katalvlaran/gridsearch/dijkstra"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/path"
)

// Run soft-resets g, searches from g.Start() to g.End() with alg and
// reconstructs the route.
//
// The grid keeps the run's state afterwards (Visited, costs, OnPath) for
// rendering. Callers must not run two searches on the same grid at once.
func Run(g *grid.Grid, alg Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	start, end := g.Start(), g.End()
	if start == nil || end == nil {
		return nil, ErrNoEndpoints
	}

	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	g.ResetSearchState()

	var (
		trace []*grid.Node
		err   error
	)
	switch alg {
	case BFS:
		bo := []bfs.Option{bfs.WithOnVisit(cfg.OnVisit)}
		if cfg.Diagonal {
			bo = append(bo, bfs.WithDiagonal())
		}
		trace, err = bfs.BFS(g, start, end, bo...)
	case DFS:
		do := []dfs.Option{dfs.WithOnVisit(cfg.OnVisit)}
		if cfg.Diagonal {
			do = append(do, dfs.WithDiagonal())
		}
		trace, err = dfs.DFS(g, start, end, do...)
	case Dijkstra:
		trace, err = dijkstra.Dijkstra(g, start, end, dijkstra.WithOnVisit(cfg.OnVisit))
	case AStar:
		trace, err = astar.AStar(g, start, end, astar.WithOnVisit(cfg.OnVisit))
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	if err != nil {
		return nil, fmt.Errorf("search: %s: %w", alg, err)
	}

	res := &Result{Algorithm: alg, Trace: trace}
	if end.Visited {
		res.Path = path.Reconstruct(g, end)
		res.Found = path.Found(res.Path, start)
		res.Cost = path.Cost(res.Path)
	}
	return res, nil
}
