package graph_test

import (
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skmhrk1209/randomgraph/internal/graph"
	"github.com/skmhrk1209/randomgraph/internal/rng"
)

func defaultParams(n int) graph.Params {
	return graph.Params{
		NumNodes:            n,
		RadiusMean:          100,
		RadiusStd:           10,
		WeightMin:           0,
		WeightMax:           0.1,
		AllowSelfLoops:      true,
		AllowDuplicateEdges: true,
	}
}

var _ = Describe("Generate", func() {
	var e *rng.Engine

	BeforeEach(func() {
		e = rng.New(1)
	})

	It("rejects unknown models", func() {
		_, err := graph.Generate(e, nil, defaultParams(10))
		Expect(err).To(MatchError(graph.ErrInvalidParameter))
	})

	Describe("ErdosRenyi", func() {
		It("yields no edges at probability zero", func() {
			for _, n := range []int{0, 1, 5, 40} {
				g, err := graph.Generate(e, graph.ErdosRenyi{EdgeProb: 0}, defaultParams(n))
				Expect(err).NotTo(HaveOccurred())
				Expect(g.Nodes).To(HaveLen(n))
				Expect(g.Edges).To(BeEmpty())
			}
		})

		It("yields every unordered pair exactly once at probability one", func() {
			g, err := graph.Generate(e, graph.ErdosRenyi{EdgeProb: 1}, defaultParams(5))
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Edges).To(HaveLen(10))

			seen := map[[2]int]int{}
			for _, edge := range g.Edges {
				Expect(edge.Tail).To(BeNumerically("<", edge.Head))
				seen[[2]int{edge.Head, edge.Tail}]++
			}
			for i := 0; i < 5; i++ {
				for j := 0; j < i; j++ {
					Expect(seen[[2]int{i, j}]).To(Equal(1))
				}
			}
		})

		It("returns an empty graph for a non-positive node count", func() {
			for _, n := range []int{0, -3} {
				g, err := graph.Generate(e, graph.ErdosRenyi{EdgeProb: 0.5}, defaultParams(n))
				Expect(err).NotTo(HaveOccurred())
				Expect(g.Nodes).To(BeEmpty())
				Expect(g.Edges).To(BeEmpty())
			}
		})

		It("rejects probabilities outside [0, 1]", func() {
			for _, p := range []float64{-0.1, 1.1} {
				_, err := graph.Generate(e, graph.ErdosRenyi{EdgeProb: p}, defaultParams(10))
				Expect(err).To(MatchError(graph.ErrInvalidParameter))
			}
		})

		It("records rest lengths and bounded weights at creation time", func() {
			params := defaultParams(8)
			g, err := graph.Generate(e, graph.ErdosRenyi{EdgeProb: 1}, params)
			Expect(err).NotTo(HaveOccurred())

			for _, edge := range g.Edges {
				dist := g.Nodes[edge.Head].Position.Dist(g.Nodes[edge.Tail].Position)
				Expect(edge.RestLength).To(Equal(dist))
				Expect(edge.Weight).To(BeNumerically(">=", params.WeightMin))
				Expect(edge.Weight).To(BeNumerically("<=", params.WeightMax))
			}
		})
	})

	Describe("BarabasiAlbert", func() {
		It("attaches every new node with exactly m edges", func() {
			const n, m = 30, 3
			g, err := graph.Generate(e, graph.BarabasiAlbert{NumEdges: m}, defaultParams(n))
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Nodes).To(HaveLen(n))

			// Complete seed graph plus m edges per grown node.
			Expect(g.Edges).To(HaveLen(m*(m-1)/2 + (n-m)*m))

			heads := make(map[int]int)
			for _, edge := range g.Edges[m*(m-1)/2:] {
				heads[edge.Head]++
				Expect(edge.Tail).To(BeNumerically("<", edge.Head))
			}
			for i := m; i < n; i++ {
				Expect(heads[i]).To(Equal(m))
			}
		})

		It("never selects the node being attached", func() {
			g, err := graph.Generate(e, graph.BarabasiAlbert{NumEdges: 2}, defaultParams(50))
			Expect(err).NotTo(HaveOccurred())
			for _, edge := range g.Edges {
				Expect(edge.Head).NotTo(Equal(edge.Tail))
			}
		})

		It("redraws duplicate targets when disallowed", func() {
			params := defaultParams(40)
			params.AllowDuplicateEdges = false
			const m = 4
			g, err := graph.Generate(e, graph.BarabasiAlbert{NumEdges: m}, params)
			Expect(err).NotTo(HaveOccurred())

			targets := make(map[int]map[int]bool)
			for _, edge := range g.Edges[m*(m-1)/2:] {
				if targets[edge.Head] == nil {
					targets[edge.Head] = make(map[int]bool)
				}
				Expect(targets[edge.Head][edge.Tail]).To(BeFalse(),
					"node %d attached to %d twice", edge.Head, edge.Tail)
				targets[edge.Head][edge.Tail] = true
			}
		})

		It("fails with a degenerate distribution for a single seed node", func() {
			_, err := graph.Generate(e, graph.BarabasiAlbert{NumEdges: 1}, defaultParams(10))
			Expect(err).To(MatchError(graph.ErrDegenerateDistribution))
		})

		It("rejects edge counts not below the node count", func() {
			for _, m := range []int{0, -1, 10, 11} {
				_, err := graph.Generate(e, graph.BarabasiAlbert{NumEdges: m}, defaultParams(10))
				Expect(err).To(MatchError(graph.ErrInvalidParameter))
			}
		})
	})

	Describe("WattsStrogatz", func() {
		It("connects each node to its k nearest neighbors without rewiring", func() {
			const n, k = 25, 4
			g, err := graph.Generate(e, graph.WattsStrogatz{NumNeighbors: k, RewireProb: 0}, defaultParams(n))
			Expect(err).NotTo(HaveOccurred())
			Expect(g.Edges).To(HaveLen(n * k))

			for i := 0; i < n; i++ {
				expected := nearestIndices(g, i, k)
				var got []int
				for _, edge := range g.Edges {
					if edge.Head == i {
						got = append(got, edge.Tail)
					}
				}
				sort.Ints(got)
				Expect(got).To(Equal(expected))
			}
		})

		It("lists each node as its own nearest neighbor by default", func() {
			g, err := graph.Generate(e, graph.WattsStrogatz{NumNeighbors: 3, RewireProb: 0}, defaultParams(12))
			Expect(err).NotTo(HaveOccurred())

			selfEdges := 0
			for _, edge := range g.Edges {
				if edge.Head == edge.Tail {
					Expect(edge.RestLength).To(BeZero())
					selfEdges++
				}
			}
			Expect(selfEdges).To(Equal(12))
		})

		It("produces no self-loops when excluded", func() {
			params := defaultParams(20)
			params.AllowSelfLoops = false
			for _, prob := range []float64{0, 1} {
				g, err := graph.Generate(e, graph.WattsStrogatz{NumNeighbors: 5, RewireProb: prob}, params)
				Expect(err).NotTo(HaveOccurred())
				Expect(g.Edges).To(HaveLen(20 * 5))
				for _, edge := range g.Edges {
					Expect(edge.Head).NotTo(Equal(edge.Tail))
				}
			}
		})

		It("rejects probabilities and neighbor counts outside their ranges", func() {
			_, err := graph.Generate(e, graph.WattsStrogatz{NumNeighbors: 3, RewireProb: 1.5}, defaultParams(10))
			Expect(err).To(MatchError(graph.ErrInvalidParameter))

			for _, k := range []int{0, 10, 12} {
				_, err := graph.Generate(e, graph.WattsStrogatz{NumNeighbors: k, RewireProb: 0.1}, defaultParams(10))
				Expect(err).To(MatchError(graph.ErrInvalidParameter))
			}
		})
	})
})

// nearestIndices recomputes the k nearest node indices to node i, including
// i itself, ties broken by index, sorted ascending for comparison.
func nearestIndices(g *graph.Graph, i, k int) []int {
	type cand struct {
		dist  float64
		index int
	}
	cands := make([]cand, len(g.Nodes))
	for j := range g.Nodes {
		cands[j] = cand{g.Nodes[j].Position.Dist(g.Nodes[i].Position), j}
	}
	sort.Slice(cands, func(a, b int) bool {
		if cands[a].dist != cands[b].dist {
			return cands[a].dist < cands[b].dist
		}
		return cands[a].index < cands[b].index
	})
	out := make([]int, k)
	for j := 0; j < k; j++ {
		out[j] = cands[j].index
	}
	sort.Ints(out)
	return out
}
