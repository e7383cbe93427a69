package resourcemgr

import (
	"github.com/google/uuid"
	"github.com/katalvlaran/vne/route"
	"github.com/katalvlaran/vne/substrate"
	"github.com/katalvlaran/vne/vnetwork"
)

// RequestID uniquely identifies an accepted request's committed mapping.
// Generated fresh on every successful commit (spec.md §3 invariant 5);
// never reused while the entry is live.
type RequestID = uuid.UUID

// NewRequestID returns a fresh, collision-free RequestID.
func NewRequestID() RequestID { return uuid.New() }

// Snapshot is the immutable record of one committed embedding: the node
// mapping, the per-virtual-link substrate path, and exactly the demand
// figures Commit deducted for it — never re-derived from a live
// vnetwork.VirtualNetwork, so Release stays exact even if the request's own
// in-memory representation is later mutated by a caller (spec.md §9 design
// note on commit/release symmetry via snapshots).
type Snapshot struct {
	ID         RequestID
	Mapping    map[vnetwork.VNodeID]substrate.NodeID
	CPUDemand  map[vnetwork.VNodeID]float64
	VLinkPaths map[vnetwork.VLinkID]route.Path
	BWDemand   map[vnetwork.VLinkID]float64
	Expiry     float64
	Cost       float64
}
