package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skmhrk1209/randomgraph/internal/graph"
)

const (
	DefaultNumNodes        = 100
	DefaultRadiusMean      = 100.0
	DefaultRadiusStd       = 10.0
	DefaultEdgeProbMin     = 0.05
	DefaultEdgeProbMax     = 0.2
	DefaultNumEdgesMin     = 1
	DefaultNumEdgesMax     = 10
	DefaultNumNeighborsMin = 10
	DefaultNumNeighborsMax = 20
	DefaultRewireProbMin   = 0.01
	DefaultRewireProbMax   = 0.1
	DefaultEdgeWeightMin   = 0.0
	DefaultEdgeWeightMax   = 0.1
	DefaultNoiseNorm       = 10.0
	DefaultDt              = 0.1
)

// Config is one immutable set of tunables consulted by the generators and
// the simulator. Free model parameters are drawn uniformly within their
// configured bounds on every model selection.
type Config struct {
	NumNodes   int     `yaml:"num_nodes"`
	RadiusMean float64 `yaml:"radius_mean"`
	RadiusStd  float64 `yaml:"radius_std"`

	EdgeProbMin     float64 `yaml:"edge_prob_min"`
	EdgeProbMax     float64 `yaml:"edge_prob_max"`
	NumEdgesMin     int     `yaml:"num_edges_min"`
	NumEdgesMax     int     `yaml:"num_edges_max"`
	NumNeighborsMin int     `yaml:"num_neighbors_min"`
	NumNeighborsMax int     `yaml:"num_neighbors_max"`
	RewireProbMin   float64 `yaml:"rewire_prob_min"`
	RewireProbMax   float64 `yaml:"rewire_prob_max"`

	EdgeWeightMin float64 `yaml:"edge_weight_min"`
	EdgeWeightMax float64 `yaml:"edge_weight_max"`

	NoiseNorm float64 `yaml:"noise_norm"`
	Dt        float64 `yaml:"dt"`

	// Seed fixes the random engine; zero seeds from system entropy.
	Seed int64 `yaml:"seed"`

	AllowSelfLoops      bool `yaml:"allow_self_loops"`
	AllowDuplicateEdges bool `yaml:"allow_duplicate_edges"`
}

func DefaultConfig() *Config {
	return &Config{
		NumNodes:            DefaultNumNodes,
		RadiusMean:          DefaultRadiusMean,
		RadiusStd:           DefaultRadiusStd,
		EdgeProbMin:         DefaultEdgeProbMin,
		EdgeProbMax:         DefaultEdgeProbMax,
		NumEdgesMin:         DefaultNumEdgesMin,
		NumEdgesMax:         DefaultNumEdgesMax,
		NumNeighborsMin:     DefaultNumNeighborsMin,
		NumNeighborsMax:     DefaultNumNeighborsMax,
		RewireProbMin:       DefaultRewireProbMin,
		RewireProbMax:       DefaultRewireProbMax,
		EdgeWeightMin:       DefaultEdgeWeightMin,
		EdgeWeightMax:       DefaultEdgeWeightMax,
		NoiseNorm:           DefaultNoiseNorm,
		Dt:                  DefaultDt,
		AllowSelfLoops:      true,
		AllowDuplicateEdges: true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", c.Dt)
	}
	if c.EdgeProbMin < 0 || c.EdgeProbMax > 1 || c.EdgeProbMin > c.EdgeProbMax {
		return fmt.Errorf("edge probability bounds [%g, %g] invalid", c.EdgeProbMin, c.EdgeProbMax)
	}
	if c.RewireProbMin < 0 || c.RewireProbMax > 1 || c.RewireProbMin > c.RewireProbMax {
		return fmt.Errorf("rewire probability bounds [%g, %g] invalid", c.RewireProbMin, c.RewireProbMax)
	}
	if c.NumEdgesMin > c.NumEdgesMax {
		return fmt.Errorf("edge count bounds [%d, %d] invalid", c.NumEdgesMin, c.NumEdgesMax)
	}
	if c.NumNeighborsMin > c.NumNeighborsMax {
		return fmt.Errorf("neighbor count bounds [%d, %d] invalid", c.NumNeighborsMin, c.NumNeighborsMax)
	}
	if c.EdgeWeightMin > c.EdgeWeightMax {
		return fmt.Errorf("edge weight bounds [%g, %g] invalid", c.EdgeWeightMin, c.EdgeWeightMax)
	}
	if c.NumNodes > 0 {
		if c.NumEdgesMax >= c.NumNodes {
			return fmt.Errorf("num_edges_max %d must be below num_nodes %d", c.NumEdgesMax, c.NumNodes)
		}
		if c.NumNeighborsMax >= c.NumNodes {
			return fmt.Errorf("num_neighbors_max %d must be below num_nodes %d", c.NumNeighborsMax, c.NumNodes)
		}
	}
	return nil
}

// Params projects the generation tunables shared by all models.
func (c *Config) Params() graph.Params {
	return graph.Params{
		NumNodes:            c.NumNodes,
		RadiusMean:          c.RadiusMean,
		RadiusStd:           c.RadiusStd,
		WeightMin:           c.EdgeWeightMin,
		WeightMax:           c.EdgeWeightMax,
		AllowSelfLoops:      c.AllowSelfLoops,
		AllowDuplicateEdges: c.AllowDuplicateEdges,
	}
}
