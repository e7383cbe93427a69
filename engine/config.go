package engine

import (
	"github.com/katalvlaran/vne/baseline"
	"github.com/katalvlaran/vne/pso"
	"github.com/katalvlaran/vne/substrate"
	"github.com/katalvlaran/vne/vnetwork"
)

// Strategy computes an embedding position (one candidate index per virtual
// node) and its fitness for vnet against net's current residual view.
// pso.Search and baseline.Embed both satisfy this shape; engine treats
// them interchangeably (spec.md's PSO vs. simpler-baseline remark).
type Strategy func(net *substrate.Network, vnet vnetwork.VirtualNetwork, candidates [][]substrate.NodeID) ([]int, float64)

// Option customizes an Engine's Config.
type Option func(cfg *Config)

// Config holds Engine's construction-time knobs.
type Config struct {
	defaultLifetime float64
	strategy        Strategy
}

func defaultConfig() *Config {
	return &Config{
		defaultLifetime: 0,
		strategy: func(net *substrate.Network, vnet vnetwork.VirtualNetwork, candidates [][]substrate.NodeID) ([]int, float64) {
			return pso.Search(net, vnet, candidates)
		},
	}
}

func newConfig(opts ...Option) *Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithDefaultLifetime sets the lifetime used for a Request whose own
// Lifetime is <= 0. A non-positive value is a no-op.
func WithDefaultLifetime(lifetime float64) Option {
	return func(cfg *Config) {
		if lifetime > 0 {
			cfg.defaultLifetime = lifetime
		}
	}
}

// WithStrategy overrides the embedding strategy outright.
func WithStrategy(s Strategy) Option {
	return func(cfg *Config) {
		if s != nil {
			cfg.strategy = s
		}
	}
}

// WithPSOOptions configures the default PSO strategy with the given
// pso.Option values, leaving everything else unchanged. Overrides any
// prior WithStrategy/WithPSOOptions/WithBaseline call.
func WithPSOOptions(opts ...pso.Option) Option {
	return func(cfg *Config) {
		cfg.strategy = func(net *substrate.Network, vnet vnetwork.VirtualNetwork, candidates [][]substrate.NodeID) ([]int, float64) {
			return pso.Search(net, vnet, candidates, opts...)
		}
	}
}

// WithBaseline selects baseline.Embed as the embedding strategy instead of
// PSO.
func WithBaseline() Option {
	return func(cfg *Config) {
		cfg.strategy = baseline.Embed
	}
}
