// Package dfs implements iterative depth-first search on grid.Grid.
//
// Key features:
//   - DFS(g, start, end, opts...): explicit LIFO stack, no recursion depth limits
//   - Nodes finalize on pop, so a node may sit on the stack several times under
//     different parents; only its first pop counts
//   - Neighbors are pushed in reverse grid order so they pop in natural order
//   - Hooks: OnVisit on each finalization
//
// DFS finds a path when one exists, not a shortest one.
//
// Complexity:
//
//   - Time:   O(N·d) for N cells and d = 4 or 8 neighbors.
//   - Memory: O(N·d) for the stack (duplicates included) and trace.
//
// Options:
//
//   - WithDiagonal()    8-directional movement.
//   - WithOnVisit(fn)   hook on each finalized node.
//
// Errors:
//
//   - ErrGridNil, ErrNodeNil, ErrForeignNode, ErrWallEndpoint for invalid input.
package dfs

import (
	"github.com/katalvlaran/gridsearch/grid"
)

// frame is a stack entry: a node and the node that pushed it.
type frame struct {
	node   *grid.Node
	parent grid.NodeID
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	grid  *grid.Grid   // underlying grid
	opts  DFSOptions   // traversal options
	end   *grid.Node   // target
	stack []frame      // LIFO of pending nodes
	trace []*grid.Node // finalization order
}

// DFS performs depth-first search on g from start until end is popped or the
// stack drains. The returned trace lists nodes in the order they were first
// popped; it includes end when end is reachable. Each finalized node carries
// Visited, Parent and Distance (depth in the DFS tree).
func DFS(g *grid.Grid, start, end *grid.Node, opts ...Option) ([]*grid.Node, error) {
	// 1. Validate input
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

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Traverse
	walker := &dfsWalker{
		grid:  g,
		opts:  dopts,
		end:   end,
		stack: make([]frame, 0, g.Size()),
		trace: make([]*grid.Node, 0, g.Size()),
	}
	walker.push(start, grid.NoNode)
	walker.traverse()

	return walker.trace, nil
}

// push adds n to the top of the stack.
func (w *dfsWalker) push(n *grid.Node, parent grid.NodeID) {
	w.stack = append(w.stack, frame{node: n, parent: parent})
}

// traverse pops until end is finalized or the stack is empty.
func (w *dfsWalker) traverse() {
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		n := top.node
		if n.Visited {
			continue // stale duplicate
		}
		w.finalize(n, top.parent)
		if n == w.end {
			return
		}

		nbrs := w.grid.Neighbors(n, w.opts.Diagonal)
		for i := len(nbrs) - 1; i >= 0; i-- {
			if !nbrs[i].Visited {
				w.push(nbrs[i], n.ID())
			}
		}
	}
}

// finalize marks n visited, fixes its parent and depth, and records it.
func (w *dfsWalker) finalize(n *grid.Node, parent grid.NodeID) {
	n.Visited = true
	n.Parent = parent
	if p := w.grid.At(parent); p != nil {
		n.Distance = p.Distance + 1
	} else {
		n.Distance = 0
	}
	w.trace = append(w.trace, n)
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(n)
	}
}
