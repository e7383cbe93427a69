package engine

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vne/candidate"
	"github.com/katalvlaran/vne/resourcemgr"
	"github.com/katalvlaran/vne/route"
	"github.com/katalvlaran/vne/substrate"
	"github.com/katalvlaran/vne/vnetwork"
)

// Engine drives the full request lifecycle of spec.md §4.G against one
// substrate.Network and its resourcemgr.Manager. Not safe for concurrent
// use from multiple goroutines simultaneously — spec.md §5 assumes a
// single-threaded cooperative scheduling model, arrivals processed
// sequentially within one tick.
type Engine struct {
	sub *substrate.Network
	mgr *resourcemgr.Manager
	cfg *Config
}

// New returns an Engine backed by sub's residual ledger, constructing a
// fresh resourcemgr.Manager for it.
func New(sub *substrate.Network, opts ...Option) *Engine {
	return &Engine{
		sub: sub,
		mgr: resourcemgr.NewManager(sub),
		cfg: newConfig(opts...),
	}
}

// HandleRequest runs spec.md §4.G's five steps: candidate selection,
// strategy search, materialization, transactional commit, and snapshot
// storage. now is the current simulation clock, used with req.Lifetime
// (or the engine's configured default, if req.Lifetime <= 0) to compute
// the stored mapping's expiry. On any failure the ledger is left exactly
// as it was before the call (resourcemgr.Manager.Commit's rollback
// contract); the returned error wraps candidate.ErrNoCandidate,
// ErrInfeasible, or one of resourcemgr's commit-failure sentinels.
func (e *Engine) HandleRequest(req vnetwork.Request, now float64) (resourcemgr.RequestID, float64, resourcemgr.Snapshot, error) {
	var zero resourcemgr.Snapshot

	candidates, err := candidate.Select(e.sub, req.Network)
	if err != nil {
		return resourcemgr.RequestID{}, 0, zero, err
	}

	position, fit := e.cfg.strategy(e.sub, req.Network, candidates)
	if math.IsInf(fit, 1) {
		return resourcemgr.RequestID{}, 0, zero, ErrInfeasible
	}

	mapping := materialize(req.Network, candidates, position)

	vlinkPaths, err := e.mgr.Commit(req.Network, mapping)
	if err != nil {
		return resourcemgr.RequestID{}, 0, zero, fmt.Errorf("engine: commit rejected: %w", err)
	}

	cost, err := committedCost(e.sub, req.Network, mapping, vlinkPaths)
	if err != nil {
		return resourcemgr.RequestID{}, 0, zero, fmt.Errorf("engine: cost accounting: %w", err)
	}

	lifetime := req.Lifetime
	if lifetime <= 0 {
		lifetime = e.cfg.defaultLifetime
	}
	expiry := now + lifetime

	id := resourcemgr.NewRequestID()
	e.mgr.Store(id, req.Network, mapping, vlinkPaths, expiry, cost)

	snap, _ := e.mgr.Get(id)
	return id, cost, snap, nil
}

// committedCost recomputes spec.md §4.E's fitness formula from the actual
// committed mapping and vlink paths, rather than trusting the strategy's
// fitness estimate — §4.E calls that estimate "indicative, not reserved",
// and capacity drift during a multi-virtual-link commit can make the
// estimate and the committed path diverge even when commit succeeds (e.g.
// a later virtual link's route.Global call sees bandwidth already spent
// by an earlier virtual link of the same request).
func committedCost(sub *substrate.Network, vnet vnetwork.VirtualNetwork, mapping map[vnetwork.VNodeID]substrate.NodeID, vlinkPaths map[vnetwork.VLinkID]route.Path) (float64, error) {
	var total float64
	for _, v := range vnet.Nodes {
		n, err := sub.Node(mapping[v.ID])
		if err != nil {
			return 0, err
		}
		total += v.CPUDemand * n.CostPerUnit
	}
	for _, vl := range vnet.Links {
		cost, err := route.Cost(sub, vlinkPaths[vl.ID], vl.Bandwidth)
		if err != nil {
			return 0, err
		}
		total += cost
	}
	return total, nil
}

// materialize turns a strategy's integer position into a concrete virtual
// node → substrate node mapping (mirrors pso's private materialize, which
// is unexported and so cannot be called from here).
func materialize(vnet vnetwork.VirtualNetwork, candidates [][]substrate.NodeID, position []int) map[vnetwork.VNodeID]substrate.NodeID {
	mapping := make(map[vnetwork.VNodeID]substrate.NodeID, len(vnet.Nodes))
	for j, v := range vnet.Nodes {
		mapping[v.ID] = candidates[j][position[j]]
	}
	return mapping
}

// ReleaseExpired releases every committed mapping with expiry <= now, in
// insertion order, and returns the ids that were released.
func (e *Engine) ReleaseExpired(now float64) ([]resourcemgr.RequestID, error) {
	return e.mgr.ReleaseExpired(now)
}

// Cancel releases a still-live mapping ahead of its natural expiry.
func (e *Engine) Cancel(id resourcemgr.RequestID) error {
	return e.mgr.Release(id)
}

// Snapshot returns the live Snapshot for id, if any.
func (e *Engine) Snapshot(id resourcemgr.RequestID) (resourcemgr.Snapshot, bool) {
	return e.mgr.Get(id)
}
