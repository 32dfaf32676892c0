package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/dfs"
	"github.com/katalvlaran/gridsearch/grid"
)

// ExampleDFS follows the first open direction until it runs out: from the
// top-left corner of an open 3×3 board it hugs the top row, then drops down
// the right edge.
func ExampleDFS() {
	g, _ := grid.New(3, 3)
	g.SetStart(0, 0)
	g.SetEnd(2, 2)

	trace, err := dfs.DFS(g, g.Start(), g.End())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, n := range trace {
		fmt.Printf("(%d,%d) ", n.Row(), n.Col())
	}
	fmt.Println()
	// Output:
	// (0,0) (0,1) (0,2) (1,2) (2,2)
}
