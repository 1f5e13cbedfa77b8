package metrics

import (
	"math"

	"github.com/skmhrk1209/randomgraph/internal/graph"
)

// MeanStretch tracks how far edges sit from their rest lengths, averaged
// over edges and ticks. A relaxing graph drives this toward zero; ambient
// noise keeps it jittering above it.
type MeanStretch struct {
	total   float64
	samples int
}

func NewMeanStretch() *MeanStretch { return &MeanStretch{} }

func (m *MeanStretch) Name() string { return "mean_stretch" }

func (m *MeanStretch) Observe(g *graph.Graph, t float64) {
	if len(g.Edges) == 0 {
		return
	}
	sum := 0.0
	for _, e := range g.Edges {
		length := g.Nodes[e.Head].Position.Dist(g.Nodes[e.Tail].Position)
		sum += math.Abs(length - e.RestLength)
	}
	m.total += sum / float64(len(g.Edges))
	m.samples++
}

func (m *MeanStretch) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanStretch) Reset() {
	m.total = 0
	m.samples = 0
}
