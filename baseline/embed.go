package baseline

import (
	"math"

	"github.com/katalvlaran/vne/substrate"
	"github.com/katalvlaran/vne/vnetwork"
)

// Embed selects the cheapest feasible substrate node per virtual node
// (SelectGreedy) and estimates total cost by routing each virtual link
// independently through the bandwidth-restricted minimum spanning forest
// (KruskalPath). It matches pso.Search's (net, vnet, candidates) →
// (position, fitness) shape so engine can use either strategy
// interchangeably (spec.md's "simpler baseline embedding algorithm,
// documented alongside" remark).
func Embed(net *substrate.Network, vnet vnetwork.VirtualNetwork, candidates [][]substrate.NodeID) ([]int, float64) {
	position, err := SelectGreedy(net, vnet, candidates)
	if err != nil {
		return nil, math.Inf(1)
	}

	mapping := make(map[vnetwork.VNodeID]substrate.NodeID, len(vnet.Nodes))
	for j, v := range vnet.Nodes {
		if position[j] < 0 {
			return position, math.Inf(1)
		}
		mapping[v.ID] = candidates[j][position[j]]
	}

	var total float64
	for j, v := range vnet.Nodes {
		n, err := net.Node(candidates[j][position[j]])
		if err != nil {
			return position, math.Inf(1)
		}
		total += v.CPUDemand * n.CostPerUnit
	}

	for _, vl := range vnet.Links {
		srcSub, okSrc := mapping[vl.Src]
		dstSub, okDst := mapping[vl.Dst]
		if !okSrc || !okDst {
			return position, math.Inf(1)
		}
		path, err := KruskalPath(net, srcSub, dstSub, vl.Bandwidth)
		if err != nil {
			return position, math.Inf(1)
		}
		for _, hop := range path.Hops {
			l, err := net.Link(hop)
			if err != nil {
				return position, math.Inf(1)
			}
			total += l.Delay + l.CostPerUnit*vl.Bandwidth
		}
	}

	return position, total
}
