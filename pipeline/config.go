package pipeline

import (
	"log/slog"

	"github.com/katalvlaran/cubesolve/search"
	"github.com/katalvlaran/cubesolve/step"
)

// Config holds process-wide tunables for a Solve call, built via the
// functional-options convention (bfs.Option/dfs.Option in the ambient
// stack this package follows).
type Config struct {
	Logger      *slog.Logger
	Version     uint32
	Concurrency int64
	MaxTotal    int
	Dedup       bool
}

// Option configures a Config.
type Option func(*Config)

// DefaultConfig returns a Config with sane defaults: no dedication
// beyond the default logger, table-generation version 1, one worker
// per variant up to 8, a 25-move total cap, and deduplication on.
func DefaultConfig() Config {
	return Config{
		Logger:      slog.Default(),
		Version:     1,
		Concurrency: 8,
		MaxTotal:    25,
		Dedup:       true,
	}
}

// New builds a Config from DefaultConfig plus opts, in order.
func New(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the structured logger Solve uses to report step
// transitions, step failures and dropped candidates. A nil logger is
// ignored (DefaultConfig's slog.Default() is kept).
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithVersion sets the pruning-table generation version tag.
func WithVersion(v uint32) Option {
	return func(c *Config) { c.Version = v }
}

// WithConcurrency bounds how many step-variant searches run at once.
// Values <= 0 are ignored.
func WithConcurrency(n int64) Option {
	return func(c *Config) {
		if n > 0 {
			c.Concurrency = n
		}
	}
}

// WithMaxTotal caps the total move count across every phase combined.
// Values <= 0 are ignored.
func WithMaxTotal(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.MaxTotal = n
		}
	}
}

// WithDedup toggles the per-total-length canonical-algorithm dedup
// filter.
func WithDedup(enabled bool) Option {
	return func(c *Config) { c.Dedup = enabled }
}

// StepConfig is the external, per-step request shape: a phase kind,
// optional axis restriction, absolute and relative length bounds, a
// NISS mode, a carry-forward cap, and (DR/RZP only) a trigger list.
type StepConfig struct {
	Kind     step.Kind
	Axes     []string // "ud", "fb", "lr"; empty means all three
	Min, Max int      // absolute cumulative bounds; 0 means unbounded
	MinRel   int       // relative bound: at least this many moves this step
	MaxRel   int        // relative bound: at most this many moves this step
	Niss     search.Mode
	StepLimit int // cap on partials carried to the next step; 0 means unbounded
	Triggers []step.Trigger
}
