package pso

import (
	"math"

	"github.com/katalvlaran/vne/substrate"
	"github.com/katalvlaran/vne/vnetwork"
)

// particle is one swarm member: an integer position (index into each
// dimension's candidate list), a real-valued velocity of the same shape,
// and its own best position seen so far.
type particle struct {
	position []int
	velocity []float64
	best     []int
	bestFit  float64
}

// Search runs the particle swarm of spec.md §4.E over candidates — one
// list per virtual node of vnet, in vnet.Nodes order — against net's
// current residual view, and returns the lowest-fitness integer vector
// found plus its fitness. net is read-only throughout: fitness evaluation
// never deducts or restores any resource.
//
// Returns fitness +Inf (with a best-effort position) if no particle ever
// found a fully routable assignment; callers must check for this before
// materializing and committing it.
func Search(net *substrate.Network, vnet vnetwork.VirtualNetwork, candidates [][]substrate.NodeID, opts ...Option) ([]int, float64) {
	cfg := newConfig(opts...)
	dims := len(candidates)
	if dims == 0 {
		return nil, 0
	}

	swarm := make([]particle, cfg.Particles)
	for i := range swarm {
		pos := make([]int, dims)
		for j, cand := range candidates {
			pos[j] = cfg.rng.Intn(len(cand))
		}
		fit := fitness(net, vnet, candidates, pos)
		swarm[i] = particle{
			position: pos,
			velocity: make([]float64, dims),
			best:     append([]int(nil), pos...),
			bestFit:  fit,
		}
	}

	gbest := append([]int(nil), swarm[0].best...)
	gbestFit := swarm[0].bestFit
	for i := 1; i < len(swarm); i++ {
		if swarm[i].bestFit < gbestFit {
			gbestFit = swarm[i].bestFit
			gbest = append([]int(nil), swarm[i].best...)
		}
	}

	for iter := 0; iter < cfg.Iterations; iter++ {
		for i := range swarm {
			p := &swarm[i]
			for j := 0; j < dims; j++ {
				r1, r2 := cfg.rng.Float64(), cfg.rng.Float64()
				p.velocity[j] = cfg.Inertia*p.velocity[j] +
					cfg.Cognitive*r1*float64(p.best[j]-p.position[j]) +
					cfg.Social*r2*float64(gbest[j]-p.position[j])

				n := len(candidates[j])
				next := int(math.Round(float64(p.position[j]) + p.velocity[j]))
				p.position[j] = wrap(next, n)
			}

			if cfg.rng.Float64() < cfg.MutationRate {
				j := cfg.rng.Intn(dims)
				p.position[j] = cfg.rng.Intn(len(candidates[j]))
			}

			fit := fitness(net, vnet, candidates, p.position)
			if fit < p.bestFit {
				p.bestFit = fit
				p.best = append([]int(nil), p.position...)
			}
			if fit < gbestFit {
				gbestFit = fit
				gbest = append([]int(nil), p.position...)
			}
		}
	}

	return gbest, gbestFit
}

// wrap reduces v into [0, n) via the modulus spec.md §9 open question (b)
// resolves on: wraparound, not reflective clamping.
func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
