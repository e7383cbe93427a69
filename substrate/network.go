package substrate

import "sync"

// Network is the substrate network: an ordered set of domains plus the
// inter-domain links stitching them together. Network is the sole owner of
// all mutable residual capacity; other packages change it only through its
// Deduct*/Restore*/SetAvailableCPU methods.
//
// muNode guards node capacities, muLink guards link capacities — a
// split-lock discipline (the same shape as lvlath's core.Graph, which
// splits muVert from muEdgeAdj) so CPU and bandwidth accounting never
// contend with each other.
type Network struct {
	muNode sync.RWMutex
	muLink sync.RWMutex

	domains []*Domain
	nodes   map[NodeID]*Node
	links   map[LinkID]*Link

	nextNodeID   NodeID
	nextLinkID   LinkID
	nextDomainID DomainID
}

// NewNetwork returns an empty substrate network.
func NewNetwork() *Network {
	return &Network{
		nodes: make(map[NodeID]*Node),
		links: make(map[LinkID]*Link),
	}
}

// AddDomain creates a new, empty domain and returns its id.
// Complexity: O(1).
func (n *Network) AddDomain() DomainID {
	id := n.nextDomainID
	n.nextDomainID++
	n.domains = append(n.domains, &Domain{ID: id, boundary: make(map[NodeID]bool)})
	return id
}

// Domains returns the network's domains in insertion order.
func (n *Network) Domains() []*Domain { return n.domains }

// Domain returns the domain with the given id, or ErrDomainNotFound.
func (n *Network) Domain(id DomainID) (*Domain, error) {
	for _, d := range n.domains {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, ErrDomainNotFound
}

// AddNode creates a node in domain dom with the given CPU capacity, per-unit
// cost and delay; the node starts fully available. Returns the new node id.
func (n *Network) AddNode(dom DomainID, cpuCapacity, costPerUnit, delay float64) (NodeID, error) {
	d, err := n.Domain(dom)
	if err != nil {
		return 0, err
	}
	n.muNode.Lock()
	id := n.nextNodeID
	n.nextNodeID++
	n.nodes[id] = &Node{
		ID:           id,
		Domain:       dom,
		CPUCapacity:  cpuCapacity,
		AvailableCPU: cpuCapacity,
		CostPerUnit:  costPerUnit,
		Delay:        delay,
	}
	n.muNode.Unlock()
	d.Nodes = append(d.Nodes, id)
	return id, nil
}

// SetAvailableCPU overrides a node's current availability (dataset loading
// path: the JSON "available_cpu" field, §6). It must not exceed capacity.
func (n *Network) SetAvailableCPU(node NodeID, available float64) error {
	n.muNode.Lock()
	defer n.muNode.Unlock()
	nd, ok := n.nodes[node]
	if !ok {
		return ErrNodeNotFound
	}
	if available < 0 || available > nd.CPUCapacity {
		return ErrInsufficientResource
	}
	nd.AvailableCPU = available
	return nil
}

// MarkBoundary marks node as a boundary node of domain dom.
func (n *Network) MarkBoundary(dom DomainID, node NodeID) error {
	d, err := n.Domain(dom)
	if err != nil {
		return err
	}
	if _, err := n.Node(node); err != nil {
		return err
	}
	d.boundary[node] = true
	return nil
}

// AddIntraLink creates an intra-domain link between src and dst, both of
// which must belong to dom.
func (n *Network) AddIntraLink(dom DomainID, src, dst NodeID, bandwidth, costPerUnit, delay float64) (LinkID, error) {
	d, err := n.Domain(dom)
	if err != nil {
		return 0, err
	}
	if _, err := n.Node(src); err != nil {
		return 0, err
	}
	if _, err := n.Node(dst); err != nil {
		return 0, err
	}
	id := n.addLink(&Link{
		Kind:         Intra,
		SrcDomain:    dom,
		DstDomain:    dom,
		Src:          src,
		Dst:          dst,
		BandwidthCap: bandwidth,
		AvailableBW:  bandwidth,
		CostPerUnit:  costPerUnit,
		Delay:        delay,
	})
	d.Links = append(d.Links, id)
	return id, nil
}

// AddInterLink creates an inter-domain link between a boundary node of
// srcDom and a boundary node of dstDom.
func (n *Network) AddInterLink(srcDom, dstDom DomainID, src, dst NodeID, bandwidth, costPerUnit, delay float64) (LinkID, error) {
	if _, err := n.Domain(srcDom); err != nil {
		return 0, err
	}
	if _, err := n.Domain(dstDom); err != nil {
		return 0, err
	}
	if _, err := n.Node(src); err != nil {
		return 0, err
	}
	if _, err := n.Node(dst); err != nil {
		return 0, err
	}
	id := n.addLink(&Link{
		Kind:         Inter,
		SrcDomain:    srcDom,
		DstDomain:    dstDom,
		Src:          src,
		Dst:          dst,
		BandwidthCap: bandwidth,
		AvailableBW:  bandwidth,
		CostPerUnit:  costPerUnit,
		Delay:        delay,
	})
	return id, nil
}

func (n *Network) addLink(l *Link) LinkID {
	n.muLink.Lock()
	defer n.muLink.Unlock()
	id := n.nextLinkID
	n.nextLinkID++
	l.ID = id
	n.links[id] = l
	return id
}

// Node returns the node with the given id, or ErrNodeNotFound.
func (n *Network) Node(id NodeID) (*Node, error) {
	n.muNode.RLock()
	defer n.muNode.RUnlock()
	nd, ok := n.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return nd, nil
}

// Link returns the link with the given id, or ErrLinkNotFound.
func (n *Network) Link(id LinkID) (*Link, error) {
	n.muLink.RLock()
	defer n.muLink.RUnlock()
	l, ok := n.links[id]
	if !ok {
		return nil, ErrLinkNotFound
	}
	return l, nil
}

// InterLinks returns every inter-domain link in the network.
func (n *Network) InterLinks() []*Link {
	n.muLink.RLock()
	defer n.muLink.RUnlock()
	out := make([]*Link, 0)
	for _, id := range n.sortedLinkIDs() {
		if l := n.links[id]; l.Kind == Inter {
			out = append(out, l)
		}
	}
	return out
}

// sortedLinkIDs returns link ids in ascending (insertion) order. Callers
// must hold at least a read lock on muLink.
func (n *Network) sortedLinkIDs() []LinkID {
	ids := make([]LinkID, 0, len(n.links))
	for id := range n.links {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}

// DeductCPU reserves amount CPU on node, failing with
// ErrInsufficientResource (and leaving the ledger unchanged) if the node
// does not currently have that much available.
func (n *Network) DeductCPU(node NodeID, amount float64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	n.muNode.Lock()
	defer n.muNode.Unlock()
	nd, ok := n.nodes[node]
	if !ok {
		return ErrNodeNotFound
	}
	if nd.AvailableCPU-amount < 0 {
		return ErrInsufficientResource
	}
	nd.AvailableCPU -= amount
	return nil
}

// RestoreCPU releases amount CPU back onto node. It never fails with
// ErrInsufficientResource, since restoring cannot drive availability
// negative; it can only re-approach capacity.
func (n *Network) RestoreCPU(node NodeID, amount float64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	n.muNode.Lock()
	defer n.muNode.Unlock()
	nd, ok := n.nodes[node]
	if !ok {
		return ErrNodeNotFound
	}
	nd.AvailableCPU += amount
	if nd.AvailableCPU > nd.CPUCapacity {
		nd.AvailableCPU = nd.CPUCapacity
	}
	return nil
}

// DeductBW reserves amount bandwidth on link, failing with
// ErrInsufficientResource (and leaving the ledger unchanged) if the link
// does not currently have that much available.
func (n *Network) DeductBW(link LinkID, amount float64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	n.muLink.Lock()
	defer n.muLink.Unlock()
	l, ok := n.links[link]
	if !ok {
		return ErrLinkNotFound
	}
	if l.AvailableBW-amount < 0 {
		return ErrInsufficientResource
	}
	l.AvailableBW -= amount
	return nil
}

// RestoreBW releases amount bandwidth back onto link.
func (n *Network) RestoreBW(link LinkID, amount float64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	n.muLink.Lock()
	defer n.muLink.Unlock()
	l, ok := n.links[link]
	if !ok {
		return ErrLinkNotFound
	}
	l.AvailableBW += amount
	if l.AvailableBW > l.BandwidthCap {
		l.AvailableBW = l.BandwidthCap
	}
	return nil
}
