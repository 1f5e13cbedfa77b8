package graph

import "errors"

var (
	// ErrInvalidParameter reports a generation parameter outside its
	// documented range, e.g. a probability outside [0, 1] or an edge or
	// neighbor count not below the node count.
	ErrInvalidParameter = errors.New("graph: invalid parameter")

	// ErrDegenerateDistribution reports a preferential-attachment step
	// whose degree sequence has no positive entry, so no target can be
	// drawn. Arises for Barabasi-Albert with a single seed node.
	ErrDegenerateDistribution = errors.New("graph: degenerate degree distribution")
)
