package layout_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/layout"
	"github.com/katalvlaran/gridsearch/maze"
)

func id(r, c int) grid.NodeID { return grid.NodeID{Row: r, Col: c} }

func TestCapture_Sparse(t *testing.T) {
	g, _ := grid.New(3, 4)
	g.SetStart(0, 0)
	g.SetEnd(2, 3)
	g.SetWall(1, 1, true)
	g.SetWall(1, 2, true)
	require.NoError(t, g.SetWeight(0, 3, grid.WeightMud))
	g.Node(2, 0).Visited = true

	s := layout.Capture(g)
	assert.Equal(t, 3, s.Rows)
	assert.Equal(t, 4, s.Cols)
	require.NotNil(t, s.Start)
	require.NotNil(t, s.End)
	assert.Equal(t, id(0, 0), *s.Start)
	assert.Equal(t, id(2, 3), *s.End)
	assert.Equal(t, []grid.NodeID{id(1, 1), id(1, 2)}, s.Walls)
	assert.Equal(t, []layout.WeightedCell{{NodeID: id(0, 3), Weight: grid.WeightMud}}, s.Weights)
}

func TestCapture_JSONShape(t *testing.T) {
	g, _ := grid.New(2, 2)
	g.SetStart(0, 0)
	require.NoError(t, g.SetWeight(1, 1, 7))

	b, err := json.Marshal(layout.Capture(g))
	require.NoError(t, err)
	assert.JSONEq(t, `{"rows":2,"cols":2,"start":{"row":0,"col":0},"weights":[{"row":1,"col":1,"weight":7}]}`, string(b))
}

// TestRestore_RoundTrip rebuilds a generated maze through JSON.
func TestRestore_RoundTrip(t *testing.T) {
	g, _ := grid.New(15, 21)
	g.SetStart(1, 1)
	g.SetEnd(13, 19)
	require.NoError(t, maze.Generate(g, g.Start(), g.End(), maze.WithSeed(11)))
	require.NoError(t, maze.ScatterWeights(g, 0.2, grid.WeightWater, maze.WithSeed(11)))

	b, err := json.Marshal(layout.Capture(g))
	require.NoError(t, err)
	var s layout.Snapshot
	require.NoError(t, json.Unmarshal(b, &s))

	back, err := s.Restore()
	require.NoError(t, err)
	assert.Equal(t, g.String(), back.String())
	assert.Equal(t, g.Start().ID(), back.Start().ID())
	assert.Equal(t, g.End().ID(), back.End().ID())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			assert.Equal(t, g.Node(r, c).Weight, back.Node(r, c).Weight)
		}
	}
}

func TestValidate(t *testing.T) {
	p := func(r, c int) *grid.NodeID { v := id(r, c); return &v }

	cases := []struct {
		name string
		s    layout.Snapshot
		ok   bool
	}{
		{"Minimal", layout.Snapshot{Rows: 1, Cols: 1}, true},
		{"Empty", layout.Snapshot{Rows: 0, Cols: 3}, false},
		{"StartOut", layout.Snapshot{Rows: 2, Cols: 2, Start: p(2, 0)}, false},
		{"EndOut", layout.Snapshot{Rows: 2, Cols: 2, End: p(0, -1)}, false},
		{"SharedEndpoint", layout.Snapshot{Rows: 2, Cols: 2, Start: p(1, 1), End: p(1, 1)}, false},
		{"WallOut", layout.Snapshot{Rows: 2, Cols: 2, Walls: []grid.NodeID{id(5, 5)}}, false},
		{"WallOnStart", layout.Snapshot{Rows: 2, Cols: 2, Start: p(0, 1), Walls: []grid.NodeID{id(0, 1)}}, false},
		{"ZeroWeight", layout.Snapshot{Rows: 2, Cols: 2, Weights: []layout.WeightedCell{{NodeID: id(0, 0), Weight: 0}}}, false},
		{"WeightAboveMax", layout.Snapshot{Rows: 2, Cols: 2, Weights: []layout.WeightedCell{{NodeID: id(0, 0), Weight: grid.MaxWeight + 1}}}, false},
		{"WeightAtMax", layout.Snapshot{Rows: 2, Cols: 2, Weights: []layout.WeightedCell{{NodeID: id(0, 0), Weight: grid.MaxWeight}}}, true},
		{"WeightOut", layout.Snapshot{Rows: 2, Cols: 2, Weights: []layout.WeightedCell{{NodeID: id(3, 0), Weight: 2}}}, false},
		{"Full", layout.Snapshot{
			Rows: 3, Cols: 3, Start: p(0, 0), End: p(2, 2),
			Walls:   []grid.NodeID{id(1, 1)},
			Weights: []layout.WeightedCell{{NodeID: id(0, 2), Weight: 10}},
		}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.s.Validate()
			if tc.ok {
				require.NoError(t, err)
				_, err = tc.s.Restore()
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, layout.ErrBadSnapshot)
			_, err = tc.s.Restore()
			require.ErrorIs(t, err, layout.ErrBadSnapshot)
		})
	}
}
