package metrics

import "github.com/skmhrk1209/randomgraph/internal/graph"

// KineticEnergy tracks the mean kinetic energy per tick, treating every
// node as unit mass. Unbounded growth here usually means the noise norm or
// edge weights are large relative to the time step.
type KineticEnergy struct {
	total   float64
	samples int
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(g *graph.Graph, t float64) {
	energy := 0.0
	for _, n := range g.Nodes {
		energy += 0.5 * n.Velocity.Dot(n.Velocity)
	}
	k.total += energy
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.total = 0
	k.samples = 0
}
