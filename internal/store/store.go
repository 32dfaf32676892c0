// Package store persists layout snapshots by id, either in Redis or in
// process memory.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridsearch/layout"
)

// ErrNotFound is returned when no layout is stored under an id.
var ErrNotFound = errors.New("store: layout not found")

// Store saves and loads layout snapshots.
type Store interface {
	Save(ctx context.Context, id uuid.UUID, s layout.Snapshot) error
	Load(ctx context.Context, id uuid.UUID) (layout.Snapshot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
