package dataset

// Node is one substrate node record within a Domain.
type Node struct {
	NodeID       int      `json:"node_id"`
	CPUCapacity  float64  `json:"cpu_capacity"`
	CostPerUnit  float64  `json:"cost_per_unit"`
	Delay        float64  `json:"delay"`
	AvailableCPU *float64 `json:"available_cpu,omitempty"`
}

// Link is one intra-domain substrate link record within a Domain.
type Link struct {
	Src         int      `json:"src"`
	Dst         int      `json:"dst"`
	Bandwidth   float64  `json:"bandwidth"`
	CostPerUnit float64  `json:"cost_per_unit"`
	Delay       float64  `json:"delay"`
	AvailableBW *float64 `json:"available_bw,omitempty"`
}

// Domain is one substrate domain record: its nodes, its intra-domain
// links, and the subset of its node ids marked as boundary nodes.
type Domain struct {
	DomainID      int    `json:"domain_id"`
	Nodes         []Node `json:"nodes"`
	Links         []Link `json:"links"`
	BoundaryNodes []int  `json:"boundary_nodes"`
}

// InterDomainLink is one inter-domain substrate link record.
type InterDomainLink struct {
	SrcDomain   int      `json:"src_domain"`
	DstDomain   int      `json:"dst_domain"`
	Src         int      `json:"src"`
	Dst         int      `json:"dst"`
	Bandwidth   float64  `json:"bandwidth"`
	CostPerUnit float64  `json:"cost_per_unit"`
	Delay       float64  `json:"delay"`
	AvailableBW *float64 `json:"available_bw,omitempty"`
}

// SubstrateNetwork is the full substrate record: an ordered set of domains
// plus the inter-domain links stitching them together.
type SubstrateNetwork struct {
	Domains          []Domain          `json:"domains"`
	InterDomainLinks []InterDomainLink `json:"inter_domain_links"`
}

// VNode is one virtual node record. Domains empty or omitted means "any
// domain permitted" (spec.md §6).
type VNode struct {
	ID        int     `json:"id"`
	CPUDemand float64 `json:"cpu_demand"`
	Domains   []int   `json:"domains"`
}

// VLink is one virtual link record.
type VLink struct {
	Src       int     `json:"src"`
	Dst       int     `json:"dst"`
	Bandwidth float64 `json:"bandwidth"`
}

// VirtualNetwork is one virtual request's graph payload.
type VirtualNetwork struct {
	Nodes []VNode `json:"nodes"`
	Links []VLink `json:"links"`
}

// VirtualRequest is one arrival record: a virtual network plus its arrival
// envelope.
type VirtualRequest struct {
	VNetwork    VirtualNetwork `json:"vnetwork"`
	ArrivalTime float64        `json:"arrival_time"`
	Lifetime    float64        `json:"lifetime"`
}

// Dataset is the top-level document: one substrate network plus an ordered
// list of virtual requests.
type Dataset struct {
	SubstrateNetwork SubstrateNetwork `json:"substrate_network"`
	VirtualRequests  []VirtualRequest `json:"virtual_requests"`
}
