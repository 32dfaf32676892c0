// Package dfs explores a grid.Grid depth-first and reports the order in
// which cells were finalized, leaving parent links for path reconstruction.
//
// The stack is explicit, so large open boards cannot overflow the goroutine
// stack. Because a node is finalized on pop rather than push, the parent a
// node ends up with is the one that pushed its earliest-popped copy, which
// gives the familiar "hug the first direction" DFS shape: on an open board
// the search runs up, then right, then down, then left.
package dfs
