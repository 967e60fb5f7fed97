package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsearch/config"
	"github.com/katalvlaran/lvlsearch/internal/logging"
	"github.com/katalvlaran/lvlsearch/metrics"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	reg    *prometheus.Registry
	rec    *metrics.Recorder // nil when metrics are off
	out    io.Writer
	errOut io.Writer
}

// newRootCmd builds the command tree writing results to out and logs to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, logger: logging.NewNop()}
	var cfgPath string

	root := &cobra.Command{
		Use:   "lvlsearch",
		Short: "lvlsearch runs classical state-space searches",
		Long: `lvlsearch solves graph and grid problems described in YAML with
breadth-first, depth-first, uniform-cost, greedy, A* and iterative-deepening
search, in tree or graph form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, cfgPath)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.flushMetrics()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	// Persistent flags (available to all commands); they override the config file
	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "config file (YAML or JSON)")
	pf.StringP("strategy", "s", "", "search strategy (see 'lvlsearch strategies')")
	pf.Int("max-expansions", 0, "abort a run after this many expansions (0 = no cap)")
	pf.Int("max-depth", -1, "deepest limit for iterative deepening; limit for dls-* (-1 = none)")
	pf.Duration("timeout", 0, "cancel a run after this long (0 = none)")
	pf.Bool("trace", false, "keep and print the generated-node tree")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: text or json")
	pf.Bool("metrics", false, "record Prometheus metrics")
	pf.String("metrics-out", "", "write the Prometheus text exposition to this file")

	root.AddCommand(
		newRunCmd(a),
		newCompareCmd(a),
		newTreeCmd(a),
		newStrategiesCmd(a),
		newVersionCmd(a),
	)

	return root
}

// setup merges flags over the loaded config and builds the logger and recorder.
func (a *app) setup(cmd *cobra.Command, cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy, _ = flags.GetString("strategy")
	}
	if flags.Changed("max-expansions") {
		cfg.MaxExpansions, _ = flags.GetInt("max-expansions")
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth, _ = flags.GetInt("max-depth")
	}
	if flags.Changed("timeout") {
		cfg.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("trace") {
		cfg.Trace, _ = flags.GetBool("trace")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}
	if flags.Changed("metrics") {
		cfg.Metrics.Enabled, _ = flags.GetBool("metrics")
	}
	if flags.Changed("metrics-out") {
		cfg.Metrics.Out, _ = flags.GetString("metrics-out")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := logging.ParseLevel(cfg.Log.Level)
	logger, err := logging.New(level, cfg.Log.Format, a.errOut)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	if cfg.Metrics.Enabled || cfg.Metrics.Out != "" {
		a.reg = prometheus.NewRegistry()
		a.rec = metrics.NewRecorder(cfg.Metrics.Namespace, a.reg)
	}

	return nil
}

// flushMetrics writes the exposition file when one is configured.
func (a *app) flushMetrics() error {
	if a.reg == nil || a.cfg.Metrics.Out == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.Metrics.Out, a.reg); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.logger.Debug("metrics written", "path", a.cfg.Metrics.Out)

	return nil
}

// timeout returns the configured per-run timeout, 0 meaning none.
func (a *app) timeout() time.Duration { return a.cfg.Timeout }
