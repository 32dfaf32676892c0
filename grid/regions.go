package grid

// OpenRegions finds all 4-connected regions of non-wall cells.
// Regions are returned in row-major order of their first cell; each region
// lists its cells in BFS discovery order.
//
// Time:   O(R·C).
// Memory: O(R·C) for the seen flags and output.
func (g *Grid) OpenRegions() [][]NodeID {
	seen := make([]bool, len(g.nodes))
	var regions [][]NodeID

	for i := range g.nodes {
		if g.nodes[i].Wall || seen[i] {
			continue
		}
		// BFS to collect the region
		queue := []*Node{&g.nodes[i]}
		seen[i] = true
		var region []NodeID

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			region = append(region, u.ID())
			for _, v := range g.Neighbors(u, false) {
				vi := g.index(v.row, v.col)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, v)
				}
			}
		}
		regions = append(regions, region)
	}

	return regions
}
