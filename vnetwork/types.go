// Package vnetwork defines the tenant-facing request payload: virtual
// nodes and links forming a small graph, plus the arrival/lifetime
// envelope that turns a VirtualNetwork into a Request (spec.md §3).
package vnetwork

import "github.com/katalvlaran/vne/substrate"

// VNodeID uniquely identifies a virtual node within one VirtualNetwork.
type VNodeID int

// VLinkID uniquely identifies a virtual link within one VirtualNetwork.
type VLinkID int

// VNode is a virtual node: a CPU demand and an optional set of permitted
// substrate domains (nil or empty means any domain is permitted).
type VNode struct {
	ID               VNodeID
	CPUDemand        float64
	PermittedDomains []substrate.DomainID
}

// Permits reports whether dom is an allowed placement domain for this
// virtual node.
func (v VNode) Permits(dom substrate.DomainID) bool {
	if len(v.PermittedDomains) == 0 {
		return true
	}
	for _, d := range v.PermittedDomains {
		if d == dom {
			return true
		}
	}
	return false
}

// VLink is a virtual link between two virtual nodes of the same request,
// carrying a bandwidth demand.
type VLink struct {
	ID        VLinkID
	Src       VNodeID
	Dst       VNodeID
	Bandwidth float64
}

// VirtualNetwork is the tenant-submitted graph: an ordered set of virtual
// nodes and the virtual links among them.
type VirtualNetwork struct {
	Nodes []VNode
	Links []VLink
}

// Request is a VirtualNetwork plus its arrival envelope. The engine assigns
// a fresh request id on admission; Request itself carries none.
type Request struct {
	Network  VirtualNetwork
	Arrival  float64
	Lifetime float64
}
