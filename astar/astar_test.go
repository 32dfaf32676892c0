package astar_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/dijkstra"
	"github.com/katalvlaran/gridsearch/grid"
)

func board(t testing.TB, rows, cols, sr, sc, er, ec int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	g.SetStart(sr, sc)
	g.SetEnd(er, ec)
	return g
}

// terrain scatters walls and weights 1..9 from a fixed seed.
func terrain(g *grid.Grid, seed int64) {
	r := rand.New(rand.NewSource(seed))
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if r.Intn(5) == 0 {
				g.SetWall(row, col, true)
				continue
			}
			_ = g.SetWeight(row, col, 1+r.Intn(9))
		}
	}
}

// routeCost sums Weight along the Parent chain from end, excluding start.
func routeCost(g *grid.Grid, end *grid.Node) int {
	cost := 0
	for n := end; n.Parent.Valid(); n = g.At(n.Parent) {
		cost += n.Weight
	}
	return cost
}

func TestAStar_Validation(t *testing.T) {
	g := board(t, 2, 2, 0, 0, 1, 1)
	other := board(t, 2, 2, 0, 0, 1, 1)
	g.SetWall(0, 1, true)

	_, err := astar.AStar(nil, g.Start(), g.End())
	assert.ErrorIs(t, err, astar.ErrGridNil)
	_, err = astar.AStar(g, g.Start(), nil)
	assert.ErrorIs(t, err, astar.ErrNodeNil)
	_, err = astar.AStar(g, other.Start(), g.End())
	assert.ErrorIs(t, err, astar.ErrForeignNode)
	_, err = astar.AStar(g, g.Start(), g.Node(0, 1))
	assert.ErrorIs(t, err, astar.ErrWallEndpoint)
}

func TestManhattan(t *testing.T) {
	g := board(t, 5, 5, 0, 0, 4, 4)
	assert.Equal(t, 0, astar.Manhattan(g.Node(2, 2), g.Node(2, 2)))
	assert.Equal(t, 7, astar.Manhattan(g.Node(0, 4), g.Node(3, 0)))
	assert.Equal(t, 7, astar.Manhattan(g.Node(3, 0), g.Node(0, 4)))
}

// TestAStar_StraightCorridor finalizes only the cells on the row between
// the endpoints: every other cell has a strictly larger F.
func TestAStar_StraightCorridor(t *testing.T) {
	g := board(t, 10, 10, 5, 0, 5, 9)

	trace, err := astar.AStar(g, g.Start(), g.End())
	require.NoError(t, err)
	require.Len(t, trace, 10)
	for i, n := range trace {
		assert.Equal(t, grid.NodeID{Row: 5, Col: i}, n.ID())
		assert.Equal(t, 9, n.F)
	}
	assert.Equal(t, 9, g.End().G)
	assert.Equal(t, 0, g.End().H)
	assert.Equal(t, 9, g.Start().H)
}

// TestAStar_MatchesDijkstraCost checks optimality against dijkstra on random
// weighted boards.
func TestAStar_MatchesDijkstraCost(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g := board(t, 14, 18, 0, 0, 13, 17)
		terrain(g, seed)

		_, err := dijkstra.Dijkstra(g, g.Start(), g.End())
		require.NoError(t, err)
		want, reached := g.End().Distance, g.End().Visited

		g.ResetSearchState()
		_, err = astar.AStar(g, g.Start(), g.End())
		require.NoError(t, err)
		require.Equal(t, reached, g.End().Visited, "seed %d", seed)
		if !reached {
			continue
		}
		assert.Equal(t, want, g.End().G, "seed %d", seed)
		assert.Equal(t, want, routeCost(g, g.End()), "seed %d", seed)
	}
}

func TestAStar_Unreachable(t *testing.T) {
	g := board(t, 3, 4, 0, 0, 0, 3)
	for r := 0; r < 3; r++ {
		g.SetWall(r, 2, true)
	}

	trace, err := astar.AStar(g, g.Start(), g.End())
	require.NoError(t, err)
	assert.Len(t, trace, 6)
	assert.False(t, g.End().Visited)
	assert.Equal(t, grid.Infinity, g.End().G)
}

func TestAStar_StartIsEnd(t *testing.T) {
	g := board(t, 3, 3, 1, 1, 0, 0)
	s := g.Start()

	trace, err := astar.AStar(g, s, s)
	require.NoError(t, err)
	require.Equal(t, []*grid.Node{s}, trace)
	assert.Equal(t, 0, s.G)
	assert.Equal(t, 0, s.F)
}

func TestAStar_OnVisit(t *testing.T) {
	g := board(t, 4, 4, 0, 0, 3, 3)
	count := 0

	trace, err := astar.AStar(g, g.Start(), g.End(), astar.WithOnVisit(func(*grid.Node) { count++ }))
	require.NoError(t, err)
	assert.Equal(t, len(trace), count)
}


// TestAStar_HeaviestWeights checks a maximum-weight corridor is crossed with
// the exact cost rather than reported unreachable.
func TestAStar_HeaviestWeights(t *testing.T) {
	g := board(t, 1, 4, 0, 0, 0, 3)
	require.NoError(t, g.SetWeight(0, 1, grid.MaxWeight))
	require.NoError(t, g.SetWeight(0, 2, grid.MaxWeight))
	require.ErrorIs(t, g.SetWeight(0, 1, math.MaxInt), grid.ErrBadWeight)

	trace, err := astar.AStar(g, g.Start(), g.End())
	require.NoError(t, err)
	require.Len(t, trace, 4)
	assert.True(t, g.End().Visited)
	assert.Equal(t, 2*grid.MaxWeight+1, g.End().G)
	assert.Equal(t, 2*grid.MaxWeight+1, routeCost(g, g.End()))
}
