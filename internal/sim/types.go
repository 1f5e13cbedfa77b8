package sim

import "github.com/skmhrk1209/randomgraph/internal/graph"

// Metric accumulates one scalar over the course of a run.
type Metric interface {
	Name() string
	Observe(g *graph.Graph, t float64)
	Value() float64
	Reset()
}

// Observer sees the graph after every tick. Observers must treat the graph
// as read-only; renderers belong here.
type Observer interface {
	OnTick(g *graph.Graph, t float64)
}

// Result summarizes one run.
type Result struct {
	Model   graph.Kind
	Seed    int64
	Ticks   int
	Metrics map[string]float64
}
