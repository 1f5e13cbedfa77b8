package rng

import (
	"fmt"
	"sort"
)

// Discrete draws an index with probability proportional to its weight.
// Weights are fixed at construction; preferential attachment rebuilds one
// per degree snapshot.
type Discrete struct {
	cum   []float64
	total float64
}

// NewDiscrete builds a distribution over the given non-negative weights.
// At least one weight must be positive.
func NewDiscrete(weights []float64) (*Discrete, error) {
	d := &Discrete{cum: make([]float64, len(weights))}
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("discrete: negative weight %f at index %d", w, i)
		}
		d.total += w
		d.cum[i] = d.total
	}
	if d.total <= 0 {
		return nil, fmt.Errorf("discrete: no positive weight among %d entries", len(weights))
	}
	return d, nil
}

func (d *Discrete) Len() int { return len(d.cum) }

// Draw returns an index in [0, Len()) using one uniform draw from e.
func (d *Discrete) Draw(e *Engine) int {
	r := e.Uniform(0, d.total)
	i := sort.SearchFloat64s(d.cum, r)
	// SearchFloat64s lands on the first cumulative value >= r; an exact hit
	// on a boundary belongs to the next positive-weight bucket.
	for i < len(d.cum)-1 && d.cum[i] <= r {
		i++
	}
	return i
}
