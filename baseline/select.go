package baseline

import (
	"github.com/katalvlaran/vne/substrate"
	"github.com/katalvlaran/vne/vnetwork"
)

// SelectGreedy returns, for each virtual node in vnet.Nodes order, the
// index into candidates[j] of the cheapest feasible substrate node by
// per-unit CPU cost. Ties are broken by insertion order (the first
// candidate achieving the minimum wins), mirroring candidate.Select's own
// insertion-order determinism.
func SelectGreedy(net *substrate.Network, vnet vnetwork.VirtualNetwork, candidates [][]substrate.NodeID) ([]int, error) {
	position := make([]int, len(candidates))
	for j := range candidates {
		best := -1
		bestCost := 0.0
		for k, sid := range candidates[j] {
			n, err := net.Node(sid)
			if err != nil {
				return nil, err
			}
			if best == -1 || n.CostPerUnit < bestCost {
				best = k
				bestCost = n.CostPerUnit
			}
		}
		position[j] = best
	}
	return position, nil
}
