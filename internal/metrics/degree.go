package metrics

import "github.com/skmhrk1209/randomgraph/internal/graph"

// MaxDegree reports the highest node degree seen. Degrees are fixed per
// generation, so the value only changes when the graph is regenerated
// between runs.
type MaxDegree struct {
	max float64
}

func NewMaxDegree() *MaxDegree { return &MaxDegree{} }

func (m *MaxDegree) Name() string { return "max_degree" }

func (m *MaxDegree) Observe(g *graph.Graph, t float64) {
	for _, d := range g.Degrees() {
		if d > m.max {
			m.max = d
		}
	}
}

func (m *MaxDegree) Value() float64 { return m.max }

func (m *MaxDegree) Reset() { m.max = 0 }
