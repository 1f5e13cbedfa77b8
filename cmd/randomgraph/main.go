package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/skmhrk1209/randomgraph/internal/config"
	"github.com/skmhrk1209/randomgraph/internal/graph"
	"github.com/skmhrk1209/randomgraph/internal/metrics"
	"github.com/skmhrk1209/randomgraph/internal/rng"
	"github.com/skmhrk1209/randomgraph/internal/sim"
)

var (
	configFile string
	preset     string
	numNodes   int
	seed       int64
	verbose    bool

	dt    float64
	ticks int
	runs  int

	edgeProb   float64
	numEdges   int
	neighbors  int
	rewireProb float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "randomgraph",
		Short: "random graph generation with mass-spring relaxation",
		Long: "randomgraph builds Erdos-Renyi, Barabasi-Albert, or Watts-Strogatz graphs\n" +
			"embedded in 3D space and relaxes them as noise-driven mass-spring systems.",
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "preset configuration for the chosen model")
	rootCmd.PersistentFlags().IntVar(&numNodes, "nodes", 0, "override node count")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 seeds from system entropy)")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "generate a graph and relax it for a number of ticks",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 0, "override time step")
	runCmd.Flags().IntVar(&ticks, "ticks", 1000, "simulation ticks")
	runCmd.Flags().IntVar(&runs, "runs", 1, "parallel runs seeded seed, seed+1, ...")
	addModelFlags(runCmd)

	generateCmd := &cobra.Command{
		Use:   "generate [model]",
		Short: "generate a graph and write its snapshot as JSON to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  generateGraph,
	}
	addModelFlags(generateCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, generateCmd, presetsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addModelFlags registers the free model parameters. Leaving them unset
// makes the session draw them uniformly within the configured bounds, the
// same way an interactive model switch would.
func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&edgeProb, "edge-prob", 0.1, "edge probability (erdos_renyi)")
	cmd.Flags().IntVar(&numEdges, "edges", 5, "edges per new node (barabasi_albert)")
	cmd.Flags().IntVar(&neighbors, "neighbors", 10, "neighbors per node (watts_strogatz)")
	cmd.Flags().Float64Var(&rewireProb, "rewire-prob", 0.05, "rewire probability (watts_strogatz)")
}

func newLogger() *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func parseKind(arg string) (graph.Kind, error) {
	switch arg {
	case "erdos_renyi", "er":
		return graph.KindErdosRenyi, nil
	case "barabasi_albert", "ba":
		return graph.KindBarabasiAlbert, nil
	case "watts_strogatz", "ws":
		return graph.KindWattsStrogatz, nil
	default:
		return "", fmt.Errorf("unknown model %q (want erdos_renyi, barabasi_albert, or watts_strogatz)", arg)
	}
}

func loadConfig(kind graph.Kind) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case preset != "":
		cfg = config.GetPreset(string(kind), preset)
		if cfg == nil {
			return nil, fmt.Errorf("no preset %q for model %s", preset, kind)
		}
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	default:
		cfg = config.DefaultConfig()
	}

	if numNodes > 0 {
		cfg.NumNodes = numNodes
	}
	if dt > 0 {
		cfg.Dt = dt
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newEngine(cfg *config.Config) *rng.Engine {
	if cfg.Seed != 0 {
		return rng.New(cfg.Seed)
	}
	return rng.NewFromEntropy()
}

// explicitModel builds a model from flags when the user pinned any of its
// free parameters; otherwise nil, letting the session draw them.
func explicitModel(cmd *cobra.Command, kind graph.Kind) graph.Model {
	changed := cmd.Flags().Changed
	switch kind {
	case graph.KindErdosRenyi:
		if changed("edge-prob") {
			return graph.ErdosRenyi{EdgeProb: edgeProb}
		}
	case graph.KindBarabasiAlbert:
		if changed("edges") {
			return graph.BarabasiAlbert{NumEdges: numEdges}
		}
	case graph.KindWattsStrogatz:
		if changed("neighbors") || changed("rewire-prob") {
			return graph.WattsStrogatz{NumNeighbors: neighbors, RewireProb: rewireProb}
		}
	}
	return nil
}

func newSession(cmd *cobra.Command, kind graph.Kind, cfg *config.Config) (*sim.Session, error) {
	session := sim.NewSession(cfg, newEngine(cfg))
	if model := explicitModel(cmd, kind); model != nil {
		return session, session.SetModel(model)
	}
	return session, session.Select(kind)
}

func metricSet() []sim.Metric {
	return []sim.Metric{
		metrics.NewKineticEnergy(),
		metrics.NewMeanStretch(),
		metrics.NewMaxDegree(),
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(kind)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if runs > 1 {
		return runEnsemble(ctx, logger, kind, cfg)
	}

	session, err := newSession(cmd, kind, cfg)
	if err != nil {
		return err
	}
	for _, m := range metricSet() {
		session.AddMetric(m)
	}

	g := session.Graph()
	logger.Info("generated", "model", kind, "nodes", len(g.Nodes), "edges", len(g.Edges))
	logger.Debug("parameters", "model", fmt.Sprintf("%+v", session.Model()), "dt", cfg.Dt)

	result, err := session.Run(ctx, ticks)
	if err != nil {
		return err
	}
	printResults([]*sim.Result{result})
	return nil
}

func runEnsemble(ctx context.Context, logger *log.Logger, kind graph.Kind, cfg *config.Config) error {
	seedStart := cfg.Seed
	if seedStart == 0 {
		seedStart = rng.NewFromEntropy().Int63()
	}
	logger.Info("ensemble", "model", kind, "runs", runs, "seed_start", seedStart)

	ensemble := sim.NewEnsemble(cfg, kind, runs, seedStart, metricSet)
	results, err := ensemble.Run(ctx, ticks)
	if err != nil {
		return err
	}
	printResults(results)
	return nil
}

func printResults(results []*sim.Result) {
	if len(results) == 0 {
		return
	}

	names := make([]string, 0, len(results[0].Metrics))
	for name := range results[0].Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "MODEL\tSEED\tTICKS")
	for _, name := range names {
		fmt.Fprintf(w, "\t%s", name)
	}
	fmt.Fprintln(w)

	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%d", r.Model, r.Seed, r.Ticks)
		for _, name := range names {
			fmt.Fprintf(w, "\t%.6f", r.Metrics[name])
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func generateGraph(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(kind)
	if err != nil {
		return err
	}

	session, err := newSession(cmd, kind, cfg)
	if err != nil {
		return err
	}

	g := session.Graph()
	logger.Debug("generated", "model", kind, "nodes", len(g.Nodes), "edges", len(g.Edges))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(session.Snapshot())
}

func listPresets(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	names := config.ListPresets(string(kind))
	if len(names) == 0 {
		fmt.Printf("no presets for model %s\n", kind)
		return nil
	}
	sort.Strings(names)
	fmt.Printf("presets for %s:\n", kind)
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
