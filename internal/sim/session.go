package sim

import (
	"context"
	"fmt"

	"github.com/skmhrk1209/randomgraph/internal/config"
	"github.com/skmhrk1209/randomgraph/internal/graph"
	"github.com/skmhrk1209/randomgraph/internal/physics"
	"github.com/skmhrk1209/randomgraph/internal/rng"
)

// Session owns one graph and everything needed to evolve it: the random
// engine, the noise field, and the configuration. All work happens
// synchronously inside Select and Step; there is exactly one logical owner
// of the graph at a time.
type Session struct {
	cfg       *config.Config
	engine    *rng.Engine
	simulator *physics.Simulator
	graph     *graph.Graph
	model     graph.Model
	metrics   []Metric
	observers []Observer
	elapsed   float64
	ticks     int
}

func NewSession(cfg *config.Config, engine *rng.Engine) *Session {
	field := physics.NewField(engine.Int63())
	return &Session{
		cfg:       cfg,
		engine:    engine,
		simulator: physics.NewSimulator(field, cfg.NoiseNorm),
		graph:     &graph.Graph{},
	}
}

func (s *Session) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Session) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Select draws the chosen model's free parameters uniformly within the
// configured bounds and regenerates the graph from scratch. The old graph
// is replaced wholesale on success and kept untouched on failure.
func (s *Session) Select(kind graph.Kind) error {
	var model graph.Model
	switch kind {
	case graph.KindErdosRenyi:
		model = graph.ErdosRenyi{
			EdgeProb: s.engine.Uniform(s.cfg.EdgeProbMin, s.cfg.EdgeProbMax),
		}
	case graph.KindBarabasiAlbert:
		model = graph.BarabasiAlbert{
			NumEdges: s.engine.UniformInt(s.cfg.NumEdgesMin, s.cfg.NumEdgesMax),
		}
	case graph.KindWattsStrogatz:
		model = graph.WattsStrogatz{
			NumNeighbors: s.engine.UniformInt(s.cfg.NumNeighborsMin, s.cfg.NumNeighborsMax),
			RewireProb:   s.engine.Uniform(s.cfg.RewireProbMin, s.cfg.RewireProbMax),
		}
	default:
		return fmt.Errorf("%w: unknown model kind %q", graph.ErrInvalidParameter, kind)
	}
	return s.SetModel(model)
}

// SetModel regenerates under a model with explicitly chosen parameters,
// bypassing the configured bounds.
func (s *Session) SetModel(model graph.Model) error {
	g, err := graph.Generate(s.engine, model, s.cfg.Params())
	if err != nil {
		return err
	}
	s.graph = g
	s.model = model
	s.elapsed = 0
	s.ticks = 0
	return nil
}

// Step advances the graph by one tick of the configured time step.
func (s *Session) Step() {
	s.simulator.Step(s.graph, s.cfg.Dt)
	s.elapsed += s.cfg.Dt
	s.ticks++

	for _, m := range s.metrics {
		m.Observe(s.graph, s.elapsed)
	}
	for _, o := range s.observers {
		o.OnTick(s.graph, s.elapsed)
	}
}

// Run executes the given number of ticks, checking for cancellation between
// ticks. Metrics are reset at the start and collected into the result.
func (s *Session) Run(ctx context.Context, ticks int) (*Result, error) {
	if s.model == nil {
		return nil, fmt.Errorf("no model selected")
	}
	for _, m := range s.metrics {
		m.Reset()
	}

	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		s.Step()
	}

	result := &Result{
		Model:   s.model.Kind(),
		Seed:    s.cfg.Seed,
		Ticks:   s.ticks,
		Metrics: make(map[string]float64, len(s.metrics)),
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result, nil
}

// Graph exposes the live graph. External consumers that only render should
// prefer Snapshot.
func (s *Session) Graph() *graph.Graph { return s.graph }

func (s *Session) Model() graph.Model { return s.model }

func (s *Session) Snapshot() graph.Snapshot { return s.graph.Snapshot() }
