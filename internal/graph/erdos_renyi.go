package graph

import (
	"fmt"

	"github.com/skmhrk1209/randomgraph/internal/rng"
)

func generateErdosRenyi(e *rng.Engine, p Params, edgeProb float64) (*Graph, error) {
	if edgeProb < 0 || edgeProb > 1 {
		return nil, fmt.Errorf("%w: edge probability %g outside [0, 1]", ErrInvalidParameter, edgeProb)
	}

	g := &Graph{}
	if p.NumNodes <= 0 {
		return g, nil
	}
	g.Nodes = sampleNodes(e, p)

	// One Bernoulli per unordered pair, outer index ascending, inner index
	// ascending below it. The weight draw happens only for included pairs,
	// keeping the engine's draw order stable.
	for i := 0; i < p.NumNodes; i++ {
		for j := 0; j < i; j++ {
			if e.Bernoulli(edgeProb) {
				g.addEdge(i, j, e.Uniform(p.WeightMin, p.WeightMax))
			}
		}
	}
	return g, nil
}
