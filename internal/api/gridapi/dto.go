// Package gridapi exposes grid sessions, maze generation, searches and
// saved layouts over HTTP.
package gridapi

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/layout"
)

// CreateGridRequest asks for a new rows×cols grid.
type CreateGridRequest struct {
	Rows int `json:"rows" binding:"required,min=1"`
	Cols int `json:"cols" binding:"required,min=1"`
}

// CellRequest addresses one cell.
type CellRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// PaintRequest edits the terrain of one cell. Absent fields are left alone.
type PaintRequest struct {
	CellRequest
	Wall   *bool `json:"wall"`
	Weight *int  `json:"weight"`
}

// ClearRequest selects what to clear: all, walls, weights or search.
type ClearRequest struct {
	Mode string `json:"mode" binding:"required,oneof=all walls weights search"`
}

// MazeRequest selects a generator. Seed makes the result reproducible.
// Density and Weight apply to the scatter and terrain kinds.
type MazeRequest struct {
	Kind    string   `json:"kind" binding:"omitempty,oneof=division backtracker prim kruskal scatter terrain"`
	Seed    *int64   `json:"seed"`
	Density *float64 `json:"density"`
	Weight  *int     `json:"weight"`
}

// SearchRequest names the algorithm to run.
type SearchRequest struct {
	Algorithm string `json:"algorithm" binding:"required"`
	Diagonal  bool   `json:"diagonal"`
}

// GridResponse is the static view of a grid plus an ASCII rendering.
// Regions counts the 4-connected open areas; more than one means some
// cells cannot reach each other.
type GridResponse struct {
	ID uuid.UUID `json:"id"`
	layout.Snapshot
	Regions int    `json:"regions"`
	ASCII   string `json:"ascii"`
}

// SearchResponse is the outcome of one search. Trace lists cells in the
// order the algorithm finalized them, for playback.
type SearchResponse struct {
	Algorithm string        `json:"algorithm"`
	Found     bool          `json:"found"`
	Cost      int           `json:"cost"`
	Trace     []grid.NodeID `json:"trace"`
	Path      []grid.NodeID `json:"path"`
	ASCII     string        `json:"ascii"`
}

// LayoutResponse identifies a saved layout.
type LayoutResponse struct {
	LayoutID uuid.UUID `json:"layoutId"`
}
