package gridapi

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/internal/session"
	"github.com/katalvlaran/gridsearch/internal/store"
	"github.com/katalvlaran/gridsearch/layout"
	"github.com/katalvlaran/gridsearch/maze"
	"github.com/katalvlaran/gridsearch/search"
)

// storeTimeout bounds every layout store call.
const storeTimeout = 2 * time.Second

// errOutOfBounds is reported for cell coordinates outside the grid.
var errOutOfBounds = errors.New("gridapi: cell out of bounds")

// GridController serves grid sessions.
type GridController struct {
	sessions *session.Manager
	layouts  store.Store
}

// NewGridController initializes a GridController.
func NewGridController(sessions *session.Manager, layouts store.Store) (*GridController, error) {
	if sessions == nil || layouts == nil {
		return nil, errors.New("gridapi: sessions and layouts are required")
	}
	return &GridController{sessions: sessions, layouts: layouts}, nil
}

// Register registers the grid routes.
func (gc *GridController) Register(route *gin.RouterGroup) {
	grids := route.Group("/grids")
	{
		grids.POST("", gc.create)
		grids.GET("/:id", gc.get)
		grids.DELETE("/:id", gc.remove)
		grids.PUT("/:id/start", gc.setStart)
		grids.PUT("/:id/end", gc.setEnd)
		grids.PUT("/:id/cells", gc.paint)
		grids.POST("/:id/clear", gc.clear)
		grids.POST("/:id/maze", gc.generate)
		grids.POST("/:id/search", gc.runSearch)
		grids.POST("/:id/layouts", gc.saveLayout)
		grids.POST("/:id/layouts/:layoutId/load", gc.loadLayout)
	}
}

// create allocates a new grid session.
func (gc *GridController) create(ctx *gin.Context) {
	var request CreateGridRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := gc.sessions.Create(request.Rows, request.Cols)
	if err != nil {
		writeError(ctx, err)
		return
	}
	gc.respondGrid(ctx, s, http.StatusCreated)
}

// get returns the grid view.
func (gc *GridController) get(ctx *gin.Context) {
	s, ok := gc.lookup(ctx)
	if !ok {
		return
	}
	gc.respondGrid(ctx, s, http.StatusOK)
}

// remove deletes the session.
func (gc *GridController) remove(ctx *gin.Context) {
	s, ok := gc.lookup(ctx)
	if !ok {
		return
	}
	if err := gc.sessions.Delete(s.ID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (gc *GridController) setStart(ctx *gin.Context) { gc.moveEndpoint(ctx, (*grid.Grid).SetStart) }

func (gc *GridController) setEnd(ctx *gin.Context) { gc.moveEndpoint(ctx, (*grid.Grid).SetEnd) }

// moveEndpoint applies set to the requested cell.
func (gc *GridController) moveEndpoint(ctx *gin.Context, set func(g *grid.Grid, row, col int)) {
	s, ok := gc.lookup(ctx)
	if !ok {
		return
	}
	var request CellRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := s.Do(func(g *grid.Grid) error {
		if !g.InBounds(*request.Row, *request.Col) {
			return errOutOfBounds
		}
		g.ResetSearchState()
		set(g, *request.Row, *request.Col)
		return nil
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	gc.respondGrid(ctx, s, http.StatusOK)
}

// paint edits a single cell's wall flag and weight.
func (gc *GridController) paint(ctx *gin.Context) {
	s, ok := gc.lookup(ctx)
	if !ok {
		return
	}
	var request PaintRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := s.Do(func(g *grid.Grid) error {
		row, col := *request.Row, *request.Col
		if !g.InBounds(row, col) {
			return errOutOfBounds
		}
		if request.Weight != nil {
			if err := g.SetWeight(row, col, *request.Weight); err != nil {
				return err
			}
		}
		if request.Wall != nil {
			g.SetWall(row, col, *request.Wall)
		}
		return nil
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	gc.respondGrid(ctx, s, http.StatusOK)
}

// clear resets part of the grid state.
func (gc *GridController) clear(ctx *gin.Context) {
	s, ok := gc.lookup(ctx)
	if !ok {
		return
	}
	var request ClearRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_ = s.Do(func(g *grid.Grid) error {
		switch request.Mode {
		case "all":
			g.ClearAll()
		case "walls":
			g.ResetSearchState()
			g.ClearWalls()
		case "weights":
			g.ResetSearchState()
			g.ClearWeights()
		case "search":
			g.ResetSearchState()
		}
		return nil
	})
	gc.respondGrid(ctx, s, http.StatusOK)
}

// generate runs one of the terrain generators.
func (gc *GridController) generate(ctx *gin.Context) {
	s, ok := gc.lookup(ctx)
	if !ok {
		return
	}
	var request MazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var opts []maze.Option
	if request.Seed != nil {
		opts = append(opts, maze.WithSeed(*request.Seed))
	}
	density := 0.3
	if request.Density != nil {
		density = *request.Density
	}
	weight := grid.WeightMud
	if request.Weight != nil {
		weight = *request.Weight
	}

	err := s.Do(func(g *grid.Grid) error {
		switch request.Kind {
		case "backtracker":
			return maze.Backtracker(g, g.Start(), g.End(), opts...)
		case "prim":
			return maze.Prim(g, g.Start(), g.End(), opts...)
		case "kruskal":
			return maze.Kruskal(g, g.Start(), g.End(), opts...)
		case "scatter":
			g.ResetSearchState()
			return maze.ScatterWalls(g, density, opts...)
		case "terrain":
			g.ResetSearchState()
			return maze.ScatterWeights(g, density, weight, opts...)
		default:
			return maze.Generate(g, g.Start(), g.End(), opts...)
		}
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	gc.respondGrid(ctx, s, http.StatusOK)
}

// runSearch runs an algorithm and returns its trace and path.
func (gc *GridController) runSearch(ctx *gin.Context) {
	s, ok := gc.lookup(ctx)
	if !ok {
		return
	}
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	alg, err := search.ParseAlgorithm(request.Algorithm)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var opts []search.Option
	if request.Diagonal {
		opts = append(opts, search.WithDiagonal())
	}

	var response SearchResponse
	err = s.Do(func(g *grid.Grid) error {
		res, err := search.Run(g, alg, opts...)
		if err != nil {
			return err
		}
		response = SearchResponse{
			Algorithm: res.Algorithm.String(),
			Found:     res.Found,
			Cost:      res.Cost,
			Trace:     res.TraceIDs(),
			Path:      res.PathIDs(),
			ASCII:     g.String(),
		}
		return nil
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// saveLayout stores the grid's static state under a new layout id.
func (gc *GridController) saveLayout(ctx *gin.Context) {
	s, ok := gc.lookup(ctx)
	if !ok {
		return
	}

	var snap layout.Snapshot
	_ = s.Do(func(g *grid.Grid) error {
		snap = layout.Capture(g)
		return nil
	})

	timeoutCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	id := uuid.New()
	if err := gc.layouts.Save(timeoutCtx, id, snap); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, LayoutResponse{LayoutID: id})
}

// loadLayout replaces the session grid with a saved layout.
func (gc *GridController) loadLayout(ctx *gin.Context) {
	s, ok := gc.lookup(ctx)
	if !ok {
		return
	}
	layoutID, err := uuid.Parse(ctx.Param("layoutId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid layout id"})
		return
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	snap, err := gc.layouts.Load(timeoutCtx, layoutID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if err = gc.sessions.CheckDims(snap.Rows, snap.Cols); err != nil {
		writeError(ctx, err)
		return
	}
	g, err := snap.Restore()
	if err != nil {
		writeError(ctx, err)
		return
	}

	_ = s.Do(func(*grid.Grid) error {
		s.Replace(g)
		return nil
	})
	gc.respondGrid(ctx, s, http.StatusOK)
}

// lookup resolves the :id parameter, writing the error response itself.
func (gc *GridController) lookup(ctx *gin.Context) (*session.Session, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid grid id"})
		return nil, false
	}
	s, err := gc.sessions.Get(id)
	if err != nil {
		writeError(ctx, err)
		return nil, false
	}
	return s, true
}

// respondGrid writes the grid view of s.
func (gc *GridController) respondGrid(ctx *gin.Context, s *session.Session, status int) {
	var response GridResponse
	_ = s.Do(func(g *grid.Grid) error {
		response = GridResponse{
			ID:       s.ID,
			Snapshot: layout.Capture(g),
			Regions:  len(g.OpenRegions()),
			ASCII:    g.String(),
		}
		return nil
	})
	ctx.JSON(status, response)
}

// writeError maps domain errors to HTTP statuses.
func writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotFound), errors.Is(err, store.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, errOutOfBounds),
		errors.Is(err, session.ErrTooLarge),
		errors.Is(err, grid.ErrEmptyGrid),
		errors.Is(err, grid.ErrBadWeight),
		errors.Is(err, maze.ErrBadDensity),
		errors.Is(err, search.ErrNoEndpoints),
		errors.Is(err, search.ErrUnknownAlgorithm),
		errors.Is(err, layout.ErrBadSnapshot):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("[APP] [ERROR] %s %s: %v", ctx.Request.Method, ctx.FullPath(), err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
