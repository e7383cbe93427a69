package dataset

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/vne/substrate"
	"github.com/katalvlaran/vne/vnetwork"
)

// Decode reads one JSON Dataset document from r. Standard library
// encoding/json is used here deliberately: this is a single, fixed,
// internal wire shape (not a public HTTP API needing content negotiation,
// streaming codecs, or schema evolution), the case every other pack repo
// that reaches past encoding/json is solving.
func Decode(r io.Reader) (Dataset, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return Dataset{}, fmt.Errorf("dataset: decode: %w", err)
	}
	return ds, nil
}

// Materialize builds a *substrate.Network from ds.SubstrateNetwork and the
// ordered []vnetwork.Request implied by ds.VirtualRequests, resolving the
// dataset's own int-valued domain/node ids into the substrate.Network's
// assigned DomainID/NodeID values. Missing available_cpu/available_bw
// fields default to the resource's capacity (spec.md §6).
func Materialize(ds Dataset) (*substrate.Network, []vnetwork.Request, error) {
	net := substrate.NewNetwork()

	domainIDs := make(map[int]substrate.DomainID, len(ds.SubstrateNetwork.Domains))
	nodeIDs := make(map[int]substrate.NodeID)

	for _, d := range ds.SubstrateNetwork.Domains {
		dom := net.AddDomain()
		domainIDs[d.DomainID] = dom

		for _, n := range d.Nodes {
			nid, err := net.AddNode(dom, n.CPUCapacity, n.CostPerUnit, n.Delay)
			if err != nil {
				return nil, nil, fmt.Errorf("dataset: domain %d node %d: %w", d.DomainID, n.NodeID, err)
			}
			nodeIDs[n.NodeID] = nid
			if n.AvailableCPU != nil {
				if err := net.SetAvailableCPU(nid, *n.AvailableCPU); err != nil {
					return nil, nil, fmt.Errorf("dataset: domain %d node %d: %w", d.DomainID, n.NodeID, err)
				}
			}
		}

		for _, l := range d.Links {
			src, ok := nodeIDs[l.Src]
			if !ok {
				return nil, nil, fmt.Errorf("dataset: domain %d link references unknown node %d", d.DomainID, l.Src)
			}
			dst, ok := nodeIDs[l.Dst]
			if !ok {
				return nil, nil, fmt.Errorf("dataset: domain %d link references unknown node %d", d.DomainID, l.Dst)
			}
			lid, err := net.AddIntraLink(dom, src, dst, l.Bandwidth, l.CostPerUnit, l.Delay)
			if err != nil {
				return nil, nil, fmt.Errorf("dataset: domain %d link %d-%d: %w", d.DomainID, l.Src, l.Dst, err)
			}
			if l.AvailableBW != nil {
				if err := restoreOrDeductBW(net, lid, l.Bandwidth, *l.AvailableBW); err != nil {
					return nil, nil, err
				}
			}
		}

		for _, bnid := range d.BoundaryNodes {
			nid, ok := nodeIDs[bnid]
			if !ok {
				return nil, nil, fmt.Errorf("dataset: domain %d boundary references unknown node %d", d.DomainID, bnid)
			}
			if err := net.MarkBoundary(dom, nid); err != nil {
				return nil, nil, fmt.Errorf("dataset: domain %d boundary node %d: %w", d.DomainID, bnid, err)
			}
		}
	}

	for _, il := range ds.SubstrateNetwork.InterDomainLinks {
		srcDom, ok := domainIDs[il.SrcDomain]
		if !ok {
			return nil, nil, fmt.Errorf("dataset: inter-domain link references unknown domain %d", il.SrcDomain)
		}
		dstDom, ok := domainIDs[il.DstDomain]
		if !ok {
			return nil, nil, fmt.Errorf("dataset: inter-domain link references unknown domain %d", il.DstDomain)
		}
		src, ok := nodeIDs[il.Src]
		if !ok {
			return nil, nil, fmt.Errorf("dataset: inter-domain link references unknown node %d", il.Src)
		}
		dst, ok := nodeIDs[il.Dst]
		if !ok {
			return nil, nil, fmt.Errorf("dataset: inter-domain link references unknown node %d", il.Dst)
		}
		lid, err := net.AddInterLink(srcDom, dstDom, src, dst, il.Bandwidth, il.CostPerUnit, il.Delay)
		if err != nil {
			return nil, nil, fmt.Errorf("dataset: inter-domain link %d-%d: %w", il.Src, il.Dst, err)
		}
		if il.AvailableBW != nil {
			if err := restoreOrDeductBW(net, lid, il.Bandwidth, *il.AvailableBW); err != nil {
				return nil, nil, err
			}
		}
	}

	requests := make([]vnetwork.Request, 0, len(ds.VirtualRequests))
	for _, vr := range ds.VirtualRequests {
		vnet := vnetwork.VirtualNetwork{
			Nodes: make([]vnetwork.VNode, len(vr.VNetwork.Nodes)),
			Links: make([]vnetwork.VLink, len(vr.VNetwork.Links)),
		}
		for i, n := range vr.VNetwork.Nodes {
			permitted := make([]substrate.DomainID, 0, len(n.Domains))
			for _, d := range n.Domains {
				dom, ok := domainIDs[d]
				if !ok {
					return nil, nil, fmt.Errorf("dataset: virtual node %d references unknown domain %d", n.ID, d)
				}
				permitted = append(permitted, dom)
			}
			vnet.Nodes[i] = vnetwork.VNode{
				ID:               vnetwork.VNodeID(n.ID),
				CPUDemand:        n.CPUDemand,
				PermittedDomains: permitted,
			}
		}
		for i, l := range vr.VNetwork.Links {
			vnet.Links[i] = vnetwork.VLink{
				ID:        vnetwork.VLinkID(i),
				Src:       vnetwork.VNodeID(l.Src),
				Dst:       vnetwork.VNodeID(l.Dst),
				Bandwidth: l.Bandwidth,
			}
		}
		requests = append(requests, vnetwork.Request{
			Network:  vnet,
			Arrival:  vr.ArrivalTime,
			Lifetime: vr.Lifetime,
		})
	}

	return net, requests, nil
}

// restoreOrDeductBW adjusts a freshly-added link (created at full capacity)
// down to an explicit available_bw override.
func restoreOrDeductBW(net *substrate.Network, lid substrate.LinkID, capacity, available float64) error {
	if available > capacity {
		return fmt.Errorf("dataset: link %d available_bw %.2f exceeds capacity %.2f", lid, available, capacity)
	}
	return net.DeductBW(lid, capacity-available)
}
