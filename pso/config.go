package pso

import "math/rand"

// Option customizes a Search call's Config. It mutates the Config before
// the swarm is initialized.
type Option func(cfg *Config)

// Config holds the tunable parameters of the PSO search (spec.md §4.E).
// Not safe for concurrent mutation; each Search call builds its own.
type Config struct {
	Particles     int
	Iterations    int
	Inertia       float64
	Cognitive     float64
	Social        float64
	MutationRate  float64
	rng           *rand.Rand
}

// defaultConfig returns spec.md §4.E's fixed defaults: P=50, I=30, w=0.7,
// c1=c2=1.5, mutation rate 0.1, and an RNG seeded deterministically (seed
// 1); callers that need a different seed use WithSeed or WithRand.
func defaultConfig() *Config {
	return &Config{
		Particles:    50,
		Iterations:   30,
		Inertia:      0.7,
		Cognitive:    1.5,
		Social:       1.5,
		MutationRate: 0.1,
		rng:          rand.New(rand.NewSource(1)),
	}
}

// newConfig applies defaults, then each Option in order; later options
// override earlier ones.
func newConfig(opts ...Option) *Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithParticles overrides the swarm size P. A non-positive value is a no-op.
func WithParticles(p int) Option {
	return func(cfg *Config) {
		if p > 0 {
			cfg.Particles = p
		}
	}
}

// WithIterations overrides the iteration budget I. A non-positive value is
// a no-op.
func WithIterations(i int) Option {
	return func(cfg *Config) {
		if i > 0 {
			cfg.Iterations = i
		}
	}
}

// WithInertiaWeights overrides w, c1, c2 together.
func WithInertiaWeights(w, c1, c2 float64) Option {
	return func(cfg *Config) {
		cfg.Inertia = w
		cfg.Cognitive = c1
		cfg.Social = c2
	}
}

// WithMutationRate overrides the per-particle-per-iteration mutation
// probability. Values outside [0,1] are a no-op.
func WithMutationRate(rate float64) Option {
	return func(cfg *Config) {
		if rate >= 0 && rate <= 1 {
			cfg.MutationRate = rate
		}
	}
}

// WithRand sets an explicit *rand.Rand source. If rng is nil, this option
// is a no-op. Use this (or WithSeed) to make a Search call's outcome
// reproducible (spec.md §4.E determinism hook).
func WithRand(rng *rand.Rand) Option {
	return func(cfg *Config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with seed and assigns it as the
// RNG source.
func WithSeed(seed int64) Option {
	return func(cfg *Config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
