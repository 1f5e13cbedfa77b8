// Package graph builds random graphs embedded in 3D space.
//
// Three classical models are supported, each a tagged variant passed to
// [Generate]:
//
//   - [ErdosRenyi]: every unordered pair becomes an edge independently
//     with fixed probability
//   - [BarabasiAlbert]: new nodes attach preferentially to high-degree
//     nodes ("rich get richer")
//   - [WattsStrogatz]: spatial nearest-neighbor edges, each rewired to a
//     random target with small probability
//
// Node positions are sampled around a noisy sphere; every edge records the
// head-tail distance at creation time as its rest length, which the physics
// simulator treats as the spring's zero-stretch length. A generated graph is
// replaced wholesale on regeneration, never patched.
package graph
