// Package config loads lvlsearch settings with priority env > file > defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlsearch/internal/logging"
	"github.com/katalvlaran/lvlsearch/search"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LVLSEARCH_"

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full lvlsearch configuration.
type Config struct {
	// Strategy is the default strategy name, see search.ParseStrategy.
	Strategy string `json:"strategy" yaml:"strategy"`
	// MaxExpansions caps expansions per run; 0 disables the cap.
	MaxExpansions int `json:"max_expansions" yaml:"max_expansions"`
	// MaxDepth bounds iterative deepening and sets the depth-limited limit; -1 disables it.
	MaxDepth int `json:"max_depth" yaml:"max_depth"`
	// Timeout cancels a run after the given duration; 0 disables it.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
	// Trace keeps the generated-node log.
	Trace bool `json:"trace" yaml:"trace"`

	Log     LogConfig     `json:"log" yaml:"log"`
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// MetricsConfig controls the Prometheus recorder.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Namespace string `json:"namespace" yaml:"namespace"`
	// Out, when set, receives the text exposition after each command.
	Out string `json:"out" yaml:"out"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Strategy:      search.AStarGraph.String(),
		MaxExpansions: 0,
		MaxDepth:      search.Unlimited,
		Timeout:       0,
		Trace:         false,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled:   false,
			Namespace: "lvlsearch",
		},
	}
}

// Load builds a Config from defaults, the file at path (optional, may be
// empty or missing) and LVLSEARCH_* environment variables, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // no file, keep defaults
		}
		return err
	}

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			return fmt.Errorf("parse config (tried YAML and JSON): YAML error: %v, JSON error: %w", err, jsonErr)
		}
	}

	return nil
}

// loadEnv applies LVLSEARCH_* overrides. Unlike the file, a malformed
// value is an error rather than silently ignored.
func loadEnv(cfg *Config) error {
	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*dst = v
		}
	}
	integer := func(name string, dst *int) error {
		v, ok := os.LookupEnv(EnvPrefix + name)
		if !ok {
			return nil
		}
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, name, v, err)
		}
		*dst = i
		return nil
	}
	boolean := func(name string, dst *bool) error {
		v, ok := os.LookupEnv(EnvPrefix + name)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, name, v, err)
		}
		*dst = b
		return nil
	}

	str("STRATEGY", &cfg.Strategy)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)
	str("METRICS_NAMESPACE", &cfg.Metrics.Namespace)
	str("METRICS_OUT", &cfg.Metrics.Out)

	if v, ok := os.LookupEnv(EnvPrefix + "TIMEOUT"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sTIMEOUT=%q: %v", ErrInvalid, EnvPrefix, v, err)
		}
		cfg.Timeout = d
	}

	return errors.Join(
		integer("MAX_EXPANSIONS", &cfg.MaxExpansions),
		integer("MAX_DEPTH", &cfg.MaxDepth),
		boolean("TRACE", &cfg.Trace),
		boolean("METRICS_ENABLED", &cfg.Metrics.Enabled),
	)
}

// Validate checks every field and reports all problems at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := search.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, fmt.Errorf("strategy: %w", err))
	}
	if c.MaxExpansions < 0 {
		errs = append(errs, fmt.Errorf("max_expansions must be >= 0 (got %d)", c.MaxExpansions))
	}
	if c.MaxDepth < search.Unlimited {
		errs = append(errs, fmt.Errorf("max_depth must be >= -1 (got %d)", c.MaxDepth))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must be >= 0 (got %s)", c.Timeout))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	return nil
}

// SearchStrategy returns the parsed Strategy field.
func (c Config) SearchStrategy() (search.Strategy, error) {
	return search.ParseStrategy(c.Strategy)
}

// SearchOptions translates the search fields into options. Timeout is not
// included; callers derive a context from it.
func (c Config) SearchOptions() []search.Option {
	var opts []search.Option
	if c.MaxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(c.MaxExpansions))
	}
	if c.MaxDepth >= 0 {
		opts = append(opts, search.WithMaxDepth(c.MaxDepth))
	}
	if c.Trace {
		opts = append(opts, search.WithTrace())
	}

	return opts
}
