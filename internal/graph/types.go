package graph

import "github.com/skmhrk1209/randomgraph/internal/vec"

// Node carries the full kinematic state of one graph vertex. Velocity and
// acceleration start at zero; the simulator mutates all three every tick.
type Node struct {
	Position     vec.Vec3 `json:"position"`
	Velocity     vec.Vec3 `json:"velocity"`
	Acceleration vec.Vec3 `json:"acceleration"`
}

// Edge connects two nodes by index. RestLength is the head-tail distance at
// creation time and Weight the spring stiffness; both are immutable after
// generation.
type Edge struct {
	Head       int     `json:"head"`
	Tail       int     `json:"tail"`
	RestLength float64 `json:"rest_length"`
	Weight     float64 `json:"weight"`
}

// Graph is an ordered node sequence plus an edge sequence. Insertion order
// is load-bearing: Barabasi-Albert growth and Watts-Strogatz neighbor
// sorting both index into it.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Degrees counts edge endpoints per node. Self-loops count twice, parallel
// edges once per occurrence.
func (g *Graph) Degrees() []float64 {
	degrees := make([]float64, len(g.Nodes))
	for _, e := range g.Edges {
		degrees[e.Head]++
		degrees[e.Tail]++
	}
	return degrees
}

func (g *Graph) addEdge(head, tail int, weight float64) {
	g.Edges = append(g.Edges, Edge{
		Head:       head,
		Tail:       tail,
		RestLength: g.Nodes[head].Position.Dist(g.Nodes[tail].Position),
		Weight:     weight,
	})
}

// EdgeRef is the renderer-facing view of an edge.
type EdgeRef struct {
	Head   int     `json:"head"`
	Tail   int     `json:"tail"`
	Weight float64 `json:"weight"`
}

// Snapshot is a read-only projection for external consumers: ordered node
// positions and edge triples, detached from the live graph.
type Snapshot struct {
	Positions []vec.Vec3 `json:"positions"`
	Edges     []EdgeRef  `json:"edges"`
}

func (g *Graph) Snapshot() Snapshot {
	s := Snapshot{
		Positions: make([]vec.Vec3, len(g.Nodes)),
		Edges:     make([]EdgeRef, len(g.Edges)),
	}
	for i, n := range g.Nodes {
		s.Positions[i] = n.Position
	}
	for i, e := range g.Edges {
		s.Edges[i] = EdgeRef{Head: e.Head, Tail: e.Tail, Weight: e.Weight}
	}
	return s
}
