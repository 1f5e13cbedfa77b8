package graph

import (
	"fmt"
	"sort"

	"github.com/skmhrk1209/randomgraph/internal/rng"
)

func generateWattsStrogatz(e *rng.Engine, p Params, numNeighbors int, rewireProb float64) (*Graph, error) {
	if rewireProb < 0 || rewireProb > 1 {
		return nil, fmt.Errorf("%w: rewire probability %g outside [0, 1]", ErrInvalidParameter, rewireProb)
	}

	g := &Graph{}
	if p.NumNodes <= 0 {
		return g, nil
	}
	if numNeighbors < 1 || numNeighbors >= p.NumNodes {
		return nil, fmt.Errorf("%w: neighbors per node %d must be in [1, %d)", ErrInvalidParameter, numNeighbors, p.NumNodes)
	}
	g.Nodes = sampleNodes(e, p)

	type candidate struct {
		dist  float64
		index int
	}

	for i := range g.Nodes {
		// Rank every node by distance from i, ties broken by index. Node i
		// itself sits at distance zero and, unless self-loops are excluded,
		// occupies the first neighbor slot.
		candidates := make([]candidate, 0, p.NumNodes)
		for j := range g.Nodes {
			if j == i && !p.AllowSelfLoops {
				continue
			}
			candidates = append(candidates, candidate{
				dist:  g.Nodes[j].Position.Dist(g.Nodes[i].Position),
				index: j,
			})
		}
		sort.Slice(candidates, func(a, b int) bool {
			if candidates[a].dist != candidates[b].dist {
				return candidates[a].dist < candidates[b].dist
			}
			return candidates[a].index < candidates[b].index
		})

		used := make(map[int]bool, numNeighbors)
		for s := 0; s < numNeighbors; s++ {
			weight := e.Uniform(p.WeightMin, p.WeightMax)
			target := candidates[s].index
			if e.Bernoulli(rewireProb) {
				target = e.UniformInt(0, p.NumNodes-1)
			}
			if !p.AllowSelfLoops || !p.AllowDuplicateEdges {
				target = redrawTarget(e, p, i, target, used)
				used[target] = true
			}
			g.addEdge(i, target, weight)
		}
	}
	return g, nil
}

// redrawTarget replaces a disallowed target (self, or already used by this
// node) with fresh uniform draws. numNeighbors < numNodes leaves at least
// one admissible target, so the loop terminates.
func redrawTarget(e *rng.Engine, p Params, self, target int, used map[int]bool) int {
	for (target == self && !p.AllowSelfLoops) || (used[target] && !p.AllowDuplicateEdges) {
		target = e.UniformInt(0, p.NumNodes-1)
	}
	return target
}
