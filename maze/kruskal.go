package maze

import (
	"github.com/katalvlaran/gridsearch/grid"
)

// corridor is a candidate opening between two adjacent rooms.
type corridor struct {
	a, b cell
}

// Kruskal fills g with walls and carves a perfect maze by randomized
// Kruskal's algorithm: every corridor between adjacent rooms is considered
// once in random order and opened only if it joins two rooms not yet
// connected.
//
// Steps:
//  1. Hard-reset g and wall every cell; open every odd-coordinate room.
//  2. Collect the corridors right and down of each room; shuffle them.
//  3. Initialize a disjoint-set over rooms (path compression, union by rank).
//  4. For each corridor whose rooms lie in different sets, open it and union.
//  5. Restore start and end.
//
// Kruskal mazes have many short dead ends and no long bias in any direction.
// Complexity: O(R·C·α(R·C)) time, O(R·C) memory.
func Kruskal(g *grid.Grid, start, end *grid.Node, opts ...Option) error {
	if g == nil {
		return ErrGridNil
	}
	cfg := buildOptions(opts)
	s, e := handle(start), handle(end)

	fill(g)
	if g.Rows() >= 3 && g.Cols() >= 3 {
		// 1. Open every room and index it for the disjoint-set.
		index := make(map[cell]int)
		var walls []corridor
		for r := 1; interior(g, r, 1); r += 2 {
			for c := 1; interior(g, r, c); c += 2 {
				g.Node(r, c).Wall = false
				index[cell{r, c}] = len(index)
				// 2. Corridors toward the room on the right and the room below.
				if interior(g, r, c+2) {
					walls = append(walls, corridor{cell{r, c}, cell{r, c + 2}})
				}
				if interior(g, r+2, c) {
					walls = append(walls, corridor{cell{r, c}, cell{r + 2, c}})
				}
			}
		}
		// Fisher–Yates
		for i := len(walls) - 1; i > 0; i-- {
			j := cfg.Rand.Intn(i + 1)
			walls[i], walls[j] = walls[j], walls[i]
		}

		// 3. Disjoint-set over room indices.
		parent := make([]int, len(index))
		rank := make([]int, len(index))
		for i := range parent {
			parent[i] = i
		}
		find := func(u int) int {
			for parent[u] != u {
				parent[u] = parent[parent[u]]
				u = parent[u]
			}
			return u
		}

		// 4. Open corridors that join two components.
		for _, w := range walls {
			ra, rb := find(index[w.a]), find(index[w.b])
			if ra == rb {
				continue
			}
			carve(g, w.a, w.b)
			switch {
			case rank[ra] < rank[rb]:
				parent[ra] = rb
			case rank[ra] > rank[rb]:
				parent[rb] = ra
			default:
				parent[rb] = ra
				rank[ra]++
			}
		}
	}
	// 5. Endpoints
	restore(g, s, e)

	return nil
}
