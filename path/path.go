package path

import "github.com/katalvlaran/gridsearch/grid"

// Reconstruct walks Parent handles back from end and returns the nodes in
// start-to-end order, marking each one OnPath.
//
// The walk stops at the first node without a parent. When end was never
// reached that node is end itself and the result is the one-element
// fragment [end]; use Found to tell a real route from a fragment.
// The walk is bounded by g.Size() steps, so a corrupted parent chain cannot
// loop forever. Returns nil for a nil grid or nil end.
func Reconstruct(g *grid.Grid, end *grid.Node) []*grid.Node {
	if g == nil || end == nil {
		return nil
	}

	var rev []*grid.Node
	for n, steps := end, 0; n != nil && steps < g.Size(); steps++ {
		rev = append(rev, n)
		n = g.At(n.Parent)
	}

	p := make([]*grid.Node, len(rev))
	for i, n := range rev {
		n.OnPath = true
		p[len(rev)-1-i] = n
	}
	return p
}

// Found reports whether p is a complete route beginning at start.
func Found(p []*grid.Node, start *grid.Node) bool {
	return len(p) > 0 && start != nil && p[0] == start
}

// Cost returns the total weight of entering every cell after the first.
func Cost(p []*grid.Node) int {
	total := 0
	for i := 1; i < len(p); i++ {
		total += p[i].Weight
	}
	return total
}
