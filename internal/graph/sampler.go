package graph

import (
	"math"

	"github.com/skmhrk1209/randomgraph/internal/rng"
	"github.com/skmhrk1209/randomgraph/internal/vec"
)

// SampleNode draws one node position from a radial distribution: the radius
// is normal, both angles uniform on (-pi, pi). This is not a uniform
// distribution over the sphere; density clusters near the poles, which is
// part of the expected output.
func SampleNode(e *rng.Engine, radiusMean, radiusStd float64) Node {
	radius := e.Normal(radiusMean, radiusStd)
	theta := e.Uniform(-math.Pi, math.Pi)
	phi := e.Uniform(-math.Pi, math.Pi)

	return Node{Position: vec.Vec3{
		X: radius * math.Sin(theta) * math.Cos(phi),
		Y: radius * math.Sin(theta) * math.Sin(phi),
		Z: radius * math.Cos(theta),
	}}
}
