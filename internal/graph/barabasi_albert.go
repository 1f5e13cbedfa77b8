package graph

import (
	"fmt"

	"github.com/skmhrk1209/randomgraph/internal/rng"
)

func generateBarabasiAlbert(e *rng.Engine, p Params, numEdges int) (*Graph, error) {
	if p.NumNodes <= 0 {
		return &Graph{}, nil
	}
	if numEdges < 1 || numEdges >= p.NumNodes {
		return nil, fmt.Errorf("%w: edges per node %d must be in [1, %d)", ErrInvalidParameter, numEdges, p.NumNodes)
	}

	// Seed with a complete graph on numEdges nodes.
	seed := p
	seed.NumNodes = numEdges
	g, err := generateErdosRenyi(e, seed, 1.0)
	if err != nil {
		return nil, err
	}

	for i := numEdges; i < p.NumNodes; i++ {
		// The degree snapshot is taken once per new node, before the node
		// itself is appended, and reused for all of its attachment draws.
		// The new node is therefore never its own target, while a
		// high-degree target can be drawn more than once.
		dist, err := rng.NewDiscrete(g.Degrees())
		if err != nil {
			return nil, fmt.Errorf("%w: attaching node %d: %v", ErrDegenerateDistribution, i, err)
		}

		g.Nodes = append(g.Nodes, SampleNode(e, p.RadiusMean, p.RadiusStd))

		chosen := make(map[int]bool, numEdges)
		for j := 0; j < numEdges; j++ {
			target := dist.Draw(e)
			if !p.AllowDuplicateEdges {
				// The seed clique guarantees at least numEdges distinct
				// positive-degree candidates, so redrawing terminates.
				for chosen[target] {
					target = dist.Draw(e)
				}
				chosen[target] = true
			}
			g.addEdge(i, target, e.Uniform(p.WeightMin, p.WeightMax))
		}
	}
	return g, nil
}
