package gridapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/internal/api"
	"github.com/katalvlaran/gridsearch/internal/api/gridapi"
	"github.com/katalvlaran/gridsearch/internal/session"
	"github.com/katalvlaran/gridsearch/internal/store"
)

type GridAPISuite struct {
	suite.Suite
	sessions *session.Manager
	handler  http.Handler
}

func TestGridAPISuite(t *testing.T) {
	suite.Run(t, new(GridAPISuite))
}

func (s *GridAPISuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *GridAPISuite) SetupTest() {
	s.sessions = session.NewManager(40)
	gc, err := gridapi.NewGridController(s.sessions, store.NewMemoryStore())
	s.Require().NoError(err)
	s.handler = api.NewRouter(api.Config{
		BaseURL:     "/api",
		Controllers: []api.Controller{gc},
	}).Handler()
}

// call sends body as JSON and decodes the reply into out when non-nil.
func (s *GridAPISuite) call(method, path string, body any, out any) int {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/api/v1"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	if out != nil && rec.Body.Len() > 0 {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
	}
	return rec.Code
}

func (s *GridAPISuite) newGrid(rows, cols int) gridapi.GridResponse {
	var g gridapi.GridResponse
	code := s.call(http.MethodPost, "/grids", gin.H{"rows": rows, "cols": cols}, &g)
	s.Require().Equal(http.StatusCreated, code)
	return g
}

func cell(r, c int) gin.H { return gin.H{"row": r, "col": c} }

func (s *GridAPISuite) TestCreateAndGet() {
	created := s.newGrid(3, 4)
	s.NotEqual(uuid.Nil, created.ID)
	s.Equal(3, created.Rows)
	s.Equal(4, created.Cols)
	s.Equal("    \n    \n    \n", created.ASCII)
	s.Equal(1, created.Regions)

	var got gridapi.GridResponse
	s.Equal(http.StatusOK, s.call(http.MethodGet, "/grids/"+created.ID.String(), nil, &got))
	s.Equal(created, got)
	s.Equal(1, s.sessions.Len())
}

func (s *GridAPISuite) TestCreate_Invalid() {
	var e gin.H
	s.Equal(http.StatusBadRequest, s.call(http.MethodPost, "/grids", gin.H{"rows": 0, "cols": 3}, &e))
	s.Contains(e, "error")
	s.Equal(http.StatusBadRequest, s.call(http.MethodPost, "/grids", gin.H{"rows": 41, "cols": 3}, &e))
	s.Contains(e["error"], "too large")
}

func (s *GridAPISuite) TestUnknownGrid() {
	var e gin.H
	s.Equal(http.StatusNotFound, s.call(http.MethodGet, "/grids/"+uuid.NewString(), nil, &e))
	s.Equal(http.StatusBadRequest, s.call(http.MethodGet, "/grids/not-a-uuid", nil, &e))
}

// TestEditAndSearch places endpoints, walls and weights, then searches.
func (s *GridAPISuite) TestEditAndSearch() {
	id := s.newGrid(5, 5).ID.String()

	var g gridapi.GridResponse
	s.Require().Equal(http.StatusOK, s.call(http.MethodPut, "/grids/"+id+"/start", cell(0, 0), &g))
	s.Require().Equal(http.StatusOK, s.call(http.MethodPut, "/grids/"+id+"/end", cell(0, 4), &g))
	s.Require().NotNil(g.Start)
	s.Equal(grid.NodeID{Row: 0, Col: 4}, *g.End)

	for r := 0; r < 4; r++ {
		body := gin.H{"row": r, "col": 2, "wall": true}
		s.Require().Equal(http.StatusOK, s.call(http.MethodPut, "/grids/"+id+"/cells", body, &g))
	}
	s.Len(g.Walls, 4)
	s.Equal(1, g.Regions)

	var res gridapi.SearchResponse
	s.Require().Equal(http.StatusOK, s.call(http.MethodPost, "/grids/"+id+"/search", gin.H{"algorithm": "astar"}, &res))
	s.Equal("astar", res.Algorithm)
	s.True(res.Found)
	s.Equal(12, res.Cost)
	s.Len(res.Path, 13)
	s.Contains(res.Path, grid.NodeID{Row: 4, Col: 2})
	s.NotEmpty(res.Trace)

	body := gin.H{"row": 4, "col": 2, "weight": grid.WeightWater}
	s.Require().Equal(http.StatusOK, s.call(http.MethodPut, "/grids/"+id+"/cells", body, &g))
	s.Require().Equal(http.StatusOK, s.call(http.MethodPost, "/grids/"+id+"/search", gin.H{"algorithm": "dijkstra"}, &res))
	s.Equal(21, res.Cost)

	s.Require().Equal(http.StatusOK, s.call(http.MethodPut, "/grids/"+id+"/cells", gin.H{"row": 4, "col": 2, "wall": true}, &g))
	s.Equal(2, g.Regions, "the wall column splits the board")
	s.Require().Equal(http.StatusOK, s.call(http.MethodPost, "/grids/"+id+"/search", gin.H{"algorithm": "bfs"}, &res))
	s.False(res.Found)
	s.Empty(res.Path)
}

func (s *GridAPISuite) TestEdit_Invalid() {
	id := s.newGrid(3, 3).ID.String()
	var e gin.H

	s.Equal(http.StatusBadRequest, s.call(http.MethodPut, "/grids/"+id+"/start", cell(3, 0), &e))
	s.Equal(http.StatusBadRequest, s.call(http.MethodPut, "/grids/"+id+"/start", gin.H{"row": 1}, &e))
	s.Equal(http.StatusBadRequest, s.call(http.MethodPut, "/grids/"+id+"/cells", gin.H{"row": 1, "col": 1, "weight": 0}, &e))
	s.Equal(http.StatusBadRequest, s.call(http.MethodPut, "/grids/"+id+"/cells", gin.H{"row": 1, "col": 1, "weight": grid.MaxWeight + 1}, &e))
	s.Equal(http.StatusBadRequest, s.call(http.MethodPost, "/grids/"+id+"/maze", gin.H{"kind": "terrain", "weight": grid.MaxWeight + 1}, &e))
	s.Equal(http.StatusBadRequest, s.call(http.MethodPost, "/grids/"+id+"/search", gin.H{"algorithm": "bfs"}, &e))
	s.Contains(e["error"], "no start")
	s.Equal(http.StatusBadRequest, s.call(http.MethodPost, "/grids/"+id+"/search", gin.H{"algorithm": "greedy"}, &e))
	s.Equal(http.StatusBadRequest, s.call(http.MethodPost, "/grids/"+id+"/clear", gin.H{"mode": "everything"}, &e))
	s.Equal(http.StatusBadRequest, s.call(http.MethodPost, "/grids/"+id+"/maze", gin.H{"kind": "scatter", "density": 2}, &e))
}

// TestMazeAndLayouts generates a seeded maze, saves it, wipes the grid and
// loads the layout back.
func (s *GridAPISuite) TestMazeAndLayouts() {
	id := s.newGrid(15, 21).ID.String()
	var g gridapi.GridResponse
	s.Require().Equal(http.StatusOK, s.call(http.MethodPut, "/grids/"+id+"/start", cell(1, 1), &g))
	s.Require().Equal(http.StatusOK, s.call(http.MethodPut, "/grids/"+id+"/end", cell(13, 19), &g))

	var mazed gridapi.GridResponse
	s.Require().Equal(http.StatusOK, s.call(http.MethodPost, "/grids/"+id+"/maze", gin.H{"kind": "division", "seed": 7}, &mazed))
	s.NotEmpty(mazed.Walls)
	s.Equal(grid.NodeID{Row: 1, Col: 1}, *mazed.Start)

	var res gridapi.SearchResponse
	s.Require().Equal(http.StatusOK, s.call(http.MethodPost, "/grids/"+id+"/search", gin.H{"algorithm": "bfs"}, &res))
	s.True(res.Found)

	var saved gridapi.LayoutResponse
	s.Require().Equal(http.StatusCreated, s.call(http.MethodPost, "/grids/"+id+"/layouts", nil, &saved))
	s.NotEqual(uuid.Nil, saved.LayoutID)

	var cleared gridapi.GridResponse
	s.Require().Equal(http.StatusOK, s.call(http.MethodPost, "/grids/"+id+"/clear", gin.H{"mode": "all"}, &cleared))
	s.Empty(cleared.Walls)
	s.Nil(cleared.Start)

	var loaded gridapi.GridResponse
	s.Require().Equal(http.StatusOK, s.call(http.MethodPost, "/grids/"+id+"/layouts/"+saved.LayoutID.String()+"/load", nil, &loaded))
	s.Equal(mazed.Snapshot, loaded.Snapshot)

	var e gin.H
	s.Equal(http.StatusNotFound, s.call(http.MethodPost, "/grids/"+id+"/layouts/"+uuid.NewString()+"/load", nil, &e))
}

func (s *GridAPISuite) TestMazeKinds() {
	id := s.newGrid(11, 11).ID.String()
	for _, kind := range []string{"backtracker", "prim", "kruskal", "scatter", "terrain"} {
		var g gridapi.GridResponse
		code := s.call(http.MethodPost, "/grids/"+id+"/maze", gin.H{"kind": kind, "seed": 3}, &g)
		s.Equal(http.StatusOK, code, kind)
	}
}

func (s *GridAPISuite) TestDelete() {
	id := s.newGrid(2, 2).ID.String()
	s.Equal(http.StatusNoContent, s.call(http.MethodDelete, "/grids/"+id, nil, nil))
	s.Equal(0, s.sessions.Len())
	s.Equal(http.StatusNotFound, s.call(http.MethodDelete, "/grids/"+id, nil, nil))
}

func TestNewGridController_RequiresDeps(t *testing.T) {
	_, err := gridapi.NewGridController(nil, store.NewMemoryStore())
	require.Error(t, err)
	gc, err := gridapi.NewGridController(session.NewManager(1), store.NewMemoryStore())
	require.NoError(t, err)
	assert.NotNil(t, gc)
}
