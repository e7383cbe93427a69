package candidate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vne/substrate"
	"github.com/katalvlaran/vne/vnetwork"
)

// ErrNoCandidate is returned (wrapped with the offending virtual node id)
// when a virtual node has zero feasible substrate nodes.
var ErrNoCandidate = errors.New("candidate: no feasible substrate node")

// Select returns, for each virtual node of net in order, the substrate
// nodes that satisfy its domain constraint and CPU demand. Substrate nodes
// are considered in the network's domain and node insertion order, so the
// returned lists — and any downstream tie-breaking over them — are
// deterministic. Returns a wrapped ErrNoCandidate for the first virtual
// node with an empty candidate list.
func Select(sub *substrate.Network, vnet vnetwork.VirtualNetwork) ([][]substrate.NodeID, error) {
	out := make([][]substrate.NodeID, len(vnet.Nodes))
	for i, v := range vnet.Nodes {
		var list []substrate.NodeID
		for _, dom := range sub.Domains() {
			if !v.Permits(dom.ID) {
				continue
			}
			for _, nid := range dom.Nodes {
				n, err := sub.Node(nid)
				if err != nil {
					return nil, err
				}
				if n.AvailableCPU >= v.CPUDemand {
					list = append(list, nid)
				}
			}
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("%w: virtual node %d", ErrNoCandidate, v.ID)
		}
		out[i] = list
	}
	return out, nil
}
