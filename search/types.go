// Package search defines the closed set of search algorithms, their options
// and the result of a run.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors for Run and ParseAlgorithm.
var (
	ErrGridNil          = errors.New("search: grid is nil")
	ErrNoEndpoints      = errors.New("search: grid has no start or no end")
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm names one of the supported searches.
type Algorithm int

const (
	BFS Algorithm = iota
	DFS
	Dijkstra
	AStar
)

var names = [...]string{
	BFS:      "bfs",
	DFS:      "dfs",
	Dijkstra: "dijkstra",
	AStar:    "astar",
}

// All returns every Algorithm in declaration order.
func All() []Algorithm {
	return []Algorithm{BFS, DFS, Dijkstra, AStar}
}

// String returns the lower-case name, e.g. "astar".
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(names) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return names[a]
}

// ParseAlgorithm maps a name to an Algorithm. Matching ignores case, and
// "a*" is accepted for AStar.
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "a*" {
		return AStar, nil
	}
	for i, n := range names {
		if n == key {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(names) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(names[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Weighted reports whether the algorithm takes cell weights into account.
func (a Algorithm) Weighted() bool {
	return a == Dijkstra || a == AStar
}

// Optimal reports whether the path found is shortest under the algorithm's
// own cost model: hop count for BFS, total weight for Dijkstra and AStar.
// DFS finds some path, not a shortest one.
func (a Algorithm) Optimal() bool {
	return a == BFS || a == Dijkstra || a == AStar
}

// Options configures Run.
type Options struct {
	// Diagonal enables 8-directional movement for BFS and DFS.
	// Dijkstra and AStar always move in 4 directions and ignore it.
	Diagonal bool

	// OnVisit observes every finalized node in trace order.
	OnVisit func(n *grid.Node)
}

// Option configures Run.
type Option func(*Options)

// WithDiagonal enables diagonal moves where the algorithm supports them.
func WithDiagonal() Option {
	return func(o *Options) { o.Diagonal = true }
}

// WithOnVisit registers a finalization observer.
func WithOnVisit(fn func(n *grid.Node)) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// Result is the outcome of one Run.
type Result struct {
	Algorithm Algorithm
	Trace     []*grid.Node // finalization order
	Path      []*grid.Node // start to end; nil when end was not reached
	Found     bool
	Cost      int // total weight entered along Path
}

// TraceIDs returns the handles of Trace.
func (r *Result) TraceIDs() []grid.NodeID { return toIDs(r.Trace) }

// PathIDs returns the handles of Path.
func (r *Result) PathIDs() []grid.NodeID { return toIDs(r.Path) }

func toIDs(nodes []*grid.Node) []grid.NodeID {
	out := make([]grid.NodeID, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID()
	}
	return out
}
