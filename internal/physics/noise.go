package physics

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/skmhrk1209/randomgraph/internal/vec"
)

// Field is a smooth signed coherent-noise field over 3D space. Samples are
// spatially correlated, so nearby nodes feel similar ambient forces.
type Field struct {
	noise opensimplex.Noise
}

func NewField(seed int64) *Field {
	return &Field{noise: opensimplex.New(seed)}
}

// At evaluates one noise channel per axis. The channels cycle the input
// coordinates so the three components stay decorrelated while sharing a
// single noise source. Each component lies in roughly [-1, 1].
func (f *Field) At(p vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		X: f.noise.Eval3(p.X, p.Y, p.Z),
		Y: f.noise.Eval3(p.Y, p.Z, p.X),
		Z: f.noise.Eval3(p.Z, p.X, p.Y),
	}
}
