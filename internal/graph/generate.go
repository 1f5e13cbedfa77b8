package graph

import (
	"fmt"

	"github.com/skmhrk1209/randomgraph/internal/rng"
)

// Generate builds a fresh graph under the given model. The engine is passed
// explicitly so callers control seeding; all randomness flows through it in
// a fixed draw order. A non-positive node count yields an empty graph.
func Generate(e *rng.Engine, m Model, p Params) (*Graph, error) {
	switch m := m.(type) {
	case ErdosRenyi:
		return generateErdosRenyi(e, p, m.EdgeProb)
	case BarabasiAlbert:
		return generateBarabasiAlbert(e, p, m.NumEdges)
	case WattsStrogatz:
		return generateWattsStrogatz(e, p, m.NumNeighbors, m.RewireProb)
	default:
		return nil, fmt.Errorf("%w: unknown model %T", ErrInvalidParameter, m)
	}
}

func sampleNodes(e *rng.Engine, p Params) []Node {
	nodes := make([]Node, 0, p.NumNodes)
	for i := 0; i < p.NumNodes; i++ {
		nodes = append(nodes, SampleNode(e, p.RadiusMean, p.RadiusStd))
	}
	return nodes
}
