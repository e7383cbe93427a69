package substrate

// NodeID uniquely identifies a substrate node within a Network.
type NodeID int

// LinkID uniquely identifies a substrate link (intra- or inter-domain)
// within a Network.
type LinkID int

// DomainID uniquely identifies a substrate domain within a Network.
type DomainID int

// LinkKind distinguishes an intra-domain link from an inter-domain link.
// Both share one Link struct (spec.md §9 "tagged link kind" design note);
// routers treat them uniformly once bandwidth-filtered.
type LinkKind uint8

const (
	// Intra marks a link whose two endpoints lie in the same domain.
	Intra LinkKind = iota
	// Inter marks a link whose two endpoints lie in two distinct domains
	// (each endpoint is expected to be a boundary node of its domain;
	// AddInterLink does not check this).
	Inter
)

// Node is a substrate compute node: stable id, owning domain, CPU capacity
// and current availability, per-unit CPU cost and delay.
type Node struct {
	ID            NodeID
	Domain        DomainID
	CPUCapacity   float64
	AvailableCPU  float64
	CostPerUnit   float64
	Delay         float64
}

// Link is a substrate link, either intra-domain or inter-domain. Endpoints
// are undirected for routing purposes; capacity is a single scalar.
type Link struct {
	ID              LinkID
	Kind            LinkKind
	SrcDomain       DomainID
	DstDomain       DomainID
	Src             NodeID
	Dst             NodeID
	BandwidthCap    float64
	AvailableBW     float64
	CostPerUnit     float64
	Delay           float64
}

// Weight returns the routing weight of a hop across this link at the given
// bandwidth floor: delay + per_unit_cost · bw (spec.md §4.C).
func (l *Link) Weight(bwFloor float64) float64 {
	return l.Delay + l.CostPerUnit*bwFloor
}

// Other returns the endpoint of l that is not from, and whether from is
// actually one of l's endpoints.
func (l *Link) Other(from NodeID) (NodeID, bool) {
	switch from {
	case l.Src:
		return l.Dst, true
	case l.Dst:
		return l.Src, true
	default:
		return 0, false
	}
}

// Domain is a partition of the substrate: an ordered set of nodes, the
// intra-domain links among them, and the subset marked as boundary nodes
// (attachment points for inter-domain links).
type Domain struct {
	ID        DomainID
	Nodes     []NodeID
	Links     []LinkID
	boundary  map[NodeID]bool
}

// Boundary reports whether node is a boundary node of this domain.
func (d *Domain) Boundary(node NodeID) bool {
	return d.boundary[node]
}

// BoundaryNodes returns the domain's boundary nodes in insertion order.
func (d *Domain) BoundaryNodes() []NodeID {
	out := make([]NodeID, 0, len(d.boundary))
	for _, n := range d.Nodes {
		if d.boundary[n] {
			out = append(out, n)
		}
	}
	return out
}
