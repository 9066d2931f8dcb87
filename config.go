// config.go — functional options for Model construction, modeled directly
// on the teacher's builder.BuilderOption / newBuilderConfig pattern: a
// private config struct with sane defaults, resolved by applying options in
// order, later options overriding earlier ones.
package mcda

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/mcda/cache"
	"github.com/katalvlaran/mcda/metrics"
)

// ModelOption customizes Model construction.
type ModelOption func(cfg *modelConfig)

// modelConfig holds resolved, immutable-after-construction settings for a
// Model. It is not safe for concurrent mutation; each NewModel call builds
// its own config.
type modelConfig struct {
	logger   *log.Logger
	cache    cache.Cache
	recorder metrics.Recorder
}

// newModelConfig returns a modelConfig initialized with defaults (a
// discard logger, no cache, a no-op recorder), then applies each option in
// order.
func newModelConfig(opts ...ModelOption) *modelConfig {
	cfg := &modelConfig{
		logger:   log.New(io.Discard),
		cache:    nil,
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithLogger injects a structured logger. A nil logger is a no-op, leaving
// the default discard logger in place.
func WithLogger(logger *log.Logger) ModelOption {
	return func(cfg *modelConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithCache injects a memoization backend shared across Model instances
// constructed from equal inputs (see cache.Cache). A nil cache is a no-op.
func WithCache(c cache.Cache) ModelOption {
	return func(cfg *modelConfig) {
		if c != nil {
			cfg.cache = c
		}
	}
}

// WithMetrics injects a Prometheus-backed recorder. A nil recorder is a
// no-op, leaving the default no-op recorder in place.
func WithMetrics(r metrics.Recorder) ModelOption {
	return func(cfg *modelConfig) {
		if r != nil {
			cfg.recorder = r
		}
	}
}
