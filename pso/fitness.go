package pso

import (
	"math"

	"github.com/katalvlaran/vne/route"
	"github.com/katalvlaran/vne/substrate"
	"github.com/katalvlaran/vne/vnetwork"
)

// materialize turns a particle's integer-index position into a concrete
// virtual-node → substrate-node mapping, using candidates[j][position[j]].
func materialize(vnet vnetwork.VirtualNetwork, candidates [][]substrate.NodeID, position []int) map[vnetwork.VNodeID]substrate.NodeID {
	mapping := make(map[vnetwork.VNodeID]substrate.NodeID, len(vnet.Nodes))
	for j, v := range vnet.Nodes {
		mapping[v.ID] = candidates[j][position[j]]
	}
	return mapping
}

// fitness computes spec.md §4.E's fitness function for a particle's
// position: Σ node placement cost (cpu_demand · candidate's per-unit CPU
// cost) plus Σ routed virtual-link cost under the network's current
// residual view. Returns +Inf if any virtual link has no feasible path at
// the current capacities — fitness never mutates net.
func fitness(net *substrate.Network, vnet vnetwork.VirtualNetwork, candidates [][]substrate.NodeID, position []int) float64 {
	mapping := materialize(vnet, candidates, position)

	var total float64
	for j, v := range vnet.Nodes {
		sid := candidates[j][position[j]]
		n, err := net.Node(sid)
		if err != nil {
			return math.Inf(1)
		}
		total += v.CPUDemand * n.CostPerUnit
	}

	for _, vl := range vnet.Links {
		srcSub, okSrc := mapping[vl.Src]
		dstSub, okDst := mapping[vl.Dst]
		if !okSrc || !okDst {
			return math.Inf(1)
		}
		p, err := route.Global(net, srcSub, dstSub, vl.Bandwidth)
		if err != nil {
			return math.Inf(1)
		}
		cost, err := route.Cost(net, p, vl.Bandwidth)
		if err != nil {
			return math.Inf(1)
		}
		total += cost
	}

	return total
}
