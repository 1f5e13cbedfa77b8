package graph

// Kind identifies a graph model.
type Kind string

const (
	KindErdosRenyi     Kind = "erdos_renyi"
	KindBarabasiAlbert Kind = "barabasi_albert"
	KindWattsStrogatz  Kind = "watts_strogatz"
)

// Model is the closed set of generation variants, each carrying its own
// free parameters. Dispatch happens by type switch in Generate.
type Model interface {
	Kind() Kind
	isModel()
}

// ErdosRenyi includes every unordered node pair independently with
// probability EdgeProb.
type ErdosRenyi struct {
	EdgeProb float64
}

// BarabasiAlbert grows the graph one node at a time, attaching each new node
// to NumEdges existing nodes drawn proportionally to their current degree.
type BarabasiAlbert struct {
	NumEdges int
}

// WattsStrogatz connects every node to its NumNeighbors spatially nearest
// nodes, then rewires each connection to a uniform random target with
// probability RewireProb.
type WattsStrogatz struct {
	NumNeighbors int
	RewireProb   float64
}

func (ErdosRenyi) Kind() Kind     { return KindErdosRenyi }
func (BarabasiAlbert) Kind() Kind { return KindBarabasiAlbert }
func (WattsStrogatz) Kind() Kind  { return KindWattsStrogatz }

func (ErdosRenyi) isModel()     {}
func (BarabasiAlbert) isModel() {}
func (WattsStrogatz) isModel()  {}

// Params are the tunables shared by all generators. One immutable value per
// generation call; editing between regenerations is fine, mid-generation is
// not supported.
type Params struct {
	NumNodes   int
	RadiusMean float64
	RadiusStd  float64
	WeightMin  float64
	WeightMax  float64

	// AllowSelfLoops keeps Watts-Strogatz's quirk of listing a node as its
	// own nearest neighbor (distance zero) and of rewiring onto itself.
	AllowSelfLoops bool

	// AllowDuplicateEdges keeps repeated Barabasi-Albert targets within one
	// attachment round and repeated Watts-Strogatz targets within one
	// node's neighbor slots. When false, colliding draws are redrawn.
	AllowDuplicateEdges bool
}
