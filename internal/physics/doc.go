// Package physics relaxes a spatial graph as a mass-spring system driven
// by a coherent noise field. Each tick overwrites node accelerations with
// the sampled noise force, accumulates spring forces along the edges, and
// advances positions with a semi-implicit Euler step.
package physics
