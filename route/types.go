package route

import (
	"math"

	"github.com/katalvlaran/vne/substrate"
)

// Path is an ordered, connected sequence of substrate links forming a
// concrete route between two substrate nodes. An empty Path is valid and
// means src == dst (spec.md §4.B).
type Path struct {
	Hops []substrate.LinkID
}

// Empty reports whether the path has zero hops.
func (p Path) Empty() bool { return len(p.Hops) == 0 }

// Cost computes Σ (delay + per_unit_cost·bwFloor) over the path's hops
// (spec.md §4.C, §4.E) against the given network's current link records.
func Cost(net *substrate.Network, p Path, bwFloor float64) (float64, error) {
	var total float64
	for _, hop := range p.Hops {
		l, err := net.Link(hop)
		if err != nil {
			return 0, err
		}
		total += l.Delay + l.CostPerUnit*bwFloor
	}
	return total, nil
}

// MinAvailable returns the smallest AvailableBW across the path's hops, or
// +Inf for an empty path. Used by callers that want to double check a
// previously computed path is still feasible before committing to it.
func MinAvailable(net *substrate.Network, p Path) (float64, error) {
	min := math.Inf(1)
	for _, hop := range p.Hops {
		l, err := net.Link(hop)
		if err != nil {
			return 0, err
		}
		if l.AvailableBW < min {
			min = l.AvailableBW
		}
	}
	return min, nil
}
