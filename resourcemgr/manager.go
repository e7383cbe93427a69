package resourcemgr

import (
	"fmt"
	"sync"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/vne/route"
	"github.com/katalvlaran/vne/substrate"
	"github.com/katalvlaran/vne/vnetwork"
)

// Manager is the transactional resource manager of spec.md §4.F. It is the
// only component, besides substrate.Network itself, that mutates the
// residual ledger — and it only does so through Network's Deduct*/Restore*
// primitives, preserving substrate's "sole mutator" invariant.
type Manager struct {
	sub *substrate.Network

	mu        sync.Mutex
	committed map[RequestID]Snapshot
	order     []RequestID
}

// NewManager returns a Manager operating on sub.
func NewManager(sub *substrate.Network) *Manager {
	return &Manager{
		sub:       sub,
		committed: make(map[RequestID]Snapshot),
	}
}

// ledgerEntry records one deduction made during an in-progress Commit, so
// that a later failure can be rolled back by replaying exactly these
// entries in reverse — never by recomputing a path (spec.md §4.F, §9).
type ledgerEntry struct {
	cpuNode substrate.NodeID
	cpuAmt  float64
	bwLink  substrate.LinkID
	bwAmt   float64
	isCPU   bool
}

// Commit deducts CPU for every (virtual node, substrate node) pair in
// mapping, then routes and deducts bandwidth for every virtual link in
// vnet.Links. On any failure, every deduction made so far in this call is
// replayed in reverse and the underlying error is returned; the ledger is
// left exactly as it was before Commit was called.
func (m *Manager) Commit(vnet vnetwork.VirtualNetwork, mapping map[vnetwork.VNodeID]substrate.NodeID) (map[vnetwork.VLinkID]route.Path, error) {
	var log []ledgerEntry

	for _, v := range vnet.Nodes {
		sid, ok := mapping[v.ID]
		if !ok {
			m.rollback(log)
			return nil, fmt.Errorf("resourcemgr: virtual node %d has no mapping", v.ID)
		}
		if err := m.sub.DeductCPU(sid, v.CPUDemand); err != nil {
			m.rollback(log)
			return nil, fmt.Errorf("%w: node %d (%v)", ErrInsufficientCPU, sid, err)
		}
		log = append(log, ledgerEntry{isCPU: true, cpuNode: sid, cpuAmt: v.CPUDemand})
	}

	paths := make(map[vnetwork.VLinkID]route.Path, len(vnet.Links))
	for _, vl := range vnet.Links {
		srcSub, ok := mapping[vl.Src]
		if !ok {
			m.rollback(log)
			return nil, fmt.Errorf("resourcemgr: virtual link %d references unmapped node %d", vl.ID, vl.Src)
		}
		dstSub, ok := mapping[vl.Dst]
		if !ok {
			m.rollback(log)
			return nil, fmt.Errorf("resourcemgr: virtual link %d references unmapped node %d", vl.ID, vl.Dst)
		}

		p, err := route.Global(m.sub, srcSub, dstSub, vl.Bandwidth)
		if err != nil {
			m.rollback(log)
			return nil, fmt.Errorf("%w: virtual link %d: %v", ErrNoPath, vl.ID, err)
		}

		deducted := make([]substrate.LinkID, 0, len(p.Hops))
		var hopErr error
		for _, hop := range p.Hops {
			if err := m.sub.DeductBW(hop, vl.Bandwidth); err != nil {
				hopErr = fmt.Errorf("%w: link %d (%v)", ErrInsufficientBandwidth, hop, err)
				break
			}
			deducted = append(deducted, hop)
			log = append(log, ledgerEntry{bwLink: hop, bwAmt: vl.Bandwidth})
		}
		if hopErr != nil {
			m.rollback(log)
			return nil, hopErr
		}
		paths[vl.ID] = p
	}

	return paths, nil
}

// rollback restores every deduction in log, in reverse order, aggregating
// any restore failures (which should not occur in practice, since restore
// only ever approaches capacity) via go-multierror; if any restore failed,
// it panics with the aggregated error rather than returning it.
func (m *Manager) rollback(log []ledgerEntry) {
	var errs *multierror.Error
	for i := len(log) - 1; i >= 0; i-- {
		e := log[i]
		if e.isCPU {
			if err := m.sub.RestoreCPU(e.cpuNode, e.cpuAmt); err != nil {
				errs = multierror.Append(errs, err)
			}
			continue
		}
		if err := m.sub.RestoreBW(e.bwLink, e.bwAmt); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	if errs.ErrorOrNil() != nil {
		panic(fmt.Sprintf("resourcemgr: rollback failed to restore ledger: %v", errs))
	}
}

// Store records a successful Commit's result as a Snapshot keyed by id,
// in insertion order, so ReleaseExpired can later sweep it. vnet must be
// the same virtual network Commit was called with, so the stored demand
// figures match exactly what was deducted.
func (m *Manager) Store(id RequestID, vnet vnetwork.VirtualNetwork, mapping map[vnetwork.VNodeID]substrate.NodeID, vlinkPaths map[vnetwork.VLinkID]route.Path, expiry, cost float64) {
	cpuDemand := make(map[vnetwork.VNodeID]float64, len(vnet.Nodes))
	for _, v := range vnet.Nodes {
		cpuDemand[v.ID] = v.CPUDemand
	}
	bwDemand := make(map[vnetwork.VLinkID]float64, len(vnet.Links))
	for _, vl := range vnet.Links {
		bwDemand[vl.ID] = vl.Bandwidth
	}

	snap := Snapshot{
		ID:         id,
		Mapping:    copyMapping(mapping),
		CPUDemand:  cpuDemand,
		VLinkPaths: vlinkPaths,
		BWDemand:   bwDemand,
		Expiry:     expiry,
		Cost:       cost,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.committed[id] = snap
	m.order = append(m.order, id)
}

func copyMapping(m map[vnetwork.VNodeID]substrate.NodeID) map[vnetwork.VNodeID]substrate.NodeID {
	out := make(map[vnetwork.VNodeID]substrate.NodeID, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Get returns the live Snapshot for id, if any.
func (m *Manager) Get(id RequestID) (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.committed[id]
	return s, ok
}

// Release restores exactly what the stored Snapshot for id recorded —
// CPU for every mapped node, bandwidth for every hop of every virtual
// link's stored path — using only the snapshot's own demand figures,
// never the router and never the substrate link's own capacity (spec.md
// §9 open question (c)). It then removes the entry.
func (m *Manager) Release(id RequestID) error {
	m.mu.Lock()
	snap, ok := m.committed[id]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrUnknownRequest, id)
	}
	delete(m.committed, id)
	m.removeFromOrder(id)
	m.mu.Unlock()

	return m.releaseSnapshot(snap)
}

func (m *Manager) releaseSnapshot(snap Snapshot) error {
	var errs *multierror.Error
	for vnodeID, sid := range snap.Mapping {
		if err := m.sub.RestoreCPU(sid, snap.CPUDemand[vnodeID]); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	for vlinkID, p := range snap.VLinkPaths {
		demand := snap.BWDemand[vlinkID]
		for _, hop := range p.Hops {
			if err := m.sub.RestoreBW(hop, demand); err != nil {
				errs = multierror.Append(errs, err)
			}
		}
	}
	return errs.ErrorOrNil()
}

func (m *Manager) removeFromOrder(id RequestID) {
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			return
		}
	}
}

// ReleaseExpired releases every committed mapping with Expiry <= now, in
// insertion order, and returns the ids that were released.
func (m *Manager) ReleaseExpired(now float64) ([]RequestID, error) {
	m.mu.Lock()
	var expired []RequestID
	for _, id := range m.order {
		if snap := m.committed[id]; snap.Expiry <= now {
			expired = append(expired, id)
		}
	}
	m.mu.Unlock()

	var errs *multierror.Error
	released := make([]RequestID, 0, len(expired))
	for _, id := range expired {
		if err := m.Release(id); err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		released = append(released, id)
	}
	return released, errs.ErrorOrNil()
}
