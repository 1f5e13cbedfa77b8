package physics

import (
	"github.com/skmhrk1209/randomgraph/internal/graph"
)

// Simulator relaxes a graph as a mass-spring system stirred by ambient
// noise. It holds no per-graph state, so one simulator can outlive any
// number of regenerated graphs.
type Simulator struct {
	field     *Field
	noiseNorm float64
}

func NewSimulator(field *Field, noiseNorm float64) *Simulator {
	return &Simulator{field: field, noiseNorm: noiseNorm}
}

// Step advances node state by one tick of length dt, in place. Edges are
// read but never written; a well-formed graph cannot make Step fail, and
// unbounded growth under extreme weights is accepted rather than clamped.
func (s *Simulator) Step(g *graph.Graph, dt float64) {
	// Ambient force overwrites, not accumulates, each acceleration.
	for i := range g.Nodes {
		g.Nodes[i].Acceleration = s.field.At(g.Nodes[i].Position).Scale(s.noiseNorm)
	}

	// Each edge acts as an ideal spring with its weight as stiffness. The
	// stretch is the displacement restoring the edge to its rest length.
	// A zero-length edge normalizes to the zero vector and exerts nothing.
	for _, e := range g.Edges {
		direction := g.Nodes[e.Tail].Position.Sub(g.Nodes[e.Head].Position)
		stretch := direction.Sub(direction.Normalized().Scale(e.RestLength))
		force := stretch.Scale(e.Weight)
		g.Nodes[e.Head].Acceleration = g.Nodes[e.Head].Acceleration.Add(force)
		g.Nodes[e.Tail].Acceleration = g.Nodes[e.Tail].Acceleration.Sub(force)
	}

	// Explicit Euler with a second-order position correction: the position
	// update uses the freshly integrated velocity and the same-tick
	// acceleration. The update order is load-bearing.
	for i := range g.Nodes {
		n := &g.Nodes[i]
		n.Velocity = n.Velocity.Add(n.Acceleration.Scale(dt))
		n.Position = n.Position.Add(n.Velocity.Scale(dt)).Add(n.Acceleration.Scale(0.5 * dt * dt))
	}
}
