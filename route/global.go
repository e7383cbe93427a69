package route

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/vne/substrate"
)

// Global computes the minimum-weight path between arbitrary substrate nodes
// src and dst under a bandwidth floor (spec.md §4.C). If src and dst share a
// domain, it delegates to Local. Otherwise it enumerates every boundary-node
// pair across the two domains, routes each pair through a composite graph of
// inter-domain links and synthetic domain-crossing edges, and returns the
// concrete, re-expanded path with the lowest total weight
// (Σ delay + per_unit_cost·bwFloor over the path's hops).
func Global(net *substrate.Network, src, dst substrate.NodeID, bwFloor float64) (Path, error) {
	if src == dst {
		return Path{}, nil
	}
	srcNode, err := net.Node(src)
	if err != nil {
		return Path{}, err
	}
	dstNode, err := net.Node(dst)
	if err != nil {
		return Path{}, err
	}
	if srcNode.Domain == dstNode.Domain {
		dom, err := net.Domain(srcNode.Domain)
		if err != nil {
			return Path{}, err
		}
		return Local(net, dom, src, dst, bwFloor)
	}

	srcDom, err := net.Domain(srcNode.Domain)
	if err != nil {
		return Path{}, err
	}
	dstDom, err := net.Domain(dstNode.Domain)
	if err != nil {
		return Path{}, err
	}
	srcBoundary := srcDom.BoundaryNodes()
	dstBoundary := dstDom.BoundaryNodes()
	if len(srcBoundary) == 0 || len(dstBoundary) == 0 {
		return Path{}, ErrNoBoundary
	}

	cg, err := buildComposite(net, bwFloor)
	if err != nil {
		return Path{}, err
	}

	var (
		bestCost  = math.Inf(1)
		bestFound bool
		best      Path
	)
	for _, bSrc := range srcBoundary {
		intraSrc, err := Local(net, srcDom, src, bSrc, bwFloor)
		if err != nil {
			continue
		}
		interPaths, ok := cg.shortestPaths(bSrc)
		if !ok {
			continue
		}
		for _, bDst := range dstBoundary {
			interHops, ok := interPaths[bDst]
			if !ok {
				continue
			}
			intraDst, err := Local(net, dstDom, bDst, dst, bwFloor)
			if err != nil {
				continue
			}
			interPath, err := expand(net, interHops, bwFloor)
			if err != nil {
				continue
			}
			full := concat(intraSrc, interPath, intraDst)
			cost, err := Cost(net, full, bwFloor)
			if err != nil {
				continue
			}
			if cost < bestCost {
				bestCost = cost
				best = full
				bestFound = true
			}
		}
	}
	if !bestFound {
		return Path{}, ErrNoPath
	}
	return best, nil
}

func concat(parts ...Path) Path {
	var hops []substrate.LinkID
	for _, p := range parts {
		hops = append(hops, p.Hops...)
	}
	return Path{Hops: hops}
}

// compositeHop is one edge of the composite graph: either a real
// inter-domain link, or a synthetic "pay this to cross that domain" edge
// that must be re-expanded via Local before it can be committed.
type compositeHop struct {
	from      substrate.NodeID
	to        substrate.NodeID
	weight    float64
	link      substrate.LinkID // valid when synthetic == false
	synthetic bool
	domain    substrate.DomainID // valid when synthetic == true
}

type compositeGraph struct {
	adj map[substrate.NodeID][]compositeHop
}

// buildComposite builds the composite graph of spec.md §4.C: every
// inter-domain link with AvailableBW >= bwFloor, plus one synthetic edge
// per ordered pair of distinct boundary nodes within the same domain,
// weighted by that domain's intra-domain shortest-path cost under bwFloor
// (omitted when no such path exists).
func buildComposite(net *substrate.Network, bwFloor float64) (*compositeGraph, error) {
	cg := &compositeGraph{adj: make(map[substrate.NodeID][]compositeHop)}

	for _, l := range net.InterLinks() {
		if l.AvailableBW < bwFloor {
			continue
		}
		w := l.Delay + l.CostPerUnit*bwFloor
		cg.adj[l.Src] = append(cg.adj[l.Src], compositeHop{from: l.Src, to: l.Dst, weight: w, link: l.ID})
		cg.adj[l.Dst] = append(cg.adj[l.Dst], compositeHop{from: l.Dst, to: l.Src, weight: w, link: l.ID})
	}

	for _, dom := range net.Domains() {
		boundary := dom.BoundaryNodes()
		for _, u := range boundary {
			for _, v := range boundary {
				if u == v {
					continue
				}
				p, err := Local(net, dom, u, v, bwFloor)
				if err != nil {
					continue
				}
				cost, err := Cost(net, p, bwFloor)
				if err != nil {
					continue
				}
				cg.adj[u] = append(cg.adj[u], compositeHop{to: v, weight: cost, synthetic: true, domain: dom.ID, from: u})
			}
		}
	}
	return cg, nil
}

// shortestPaths runs Dijkstra on the composite graph from src, returning,
// for every reachable node, the ordered sequence of composite hops taken
// to reach it.
func (cg *compositeGraph) shortestPaths(src substrate.NodeID) (map[substrate.NodeID][]compositeHop, bool) {
	dist := map[substrate.NodeID]float64{src: 0}
	prev := make(map[substrate.NodeID]compositeHop)
	visited := make(map[substrate.NodeID]bool)

	pq := make(nodePQf, 0)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItemf{id: src, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItemf)
		u, d := item.id, item.dist
		if visited[u] {
			continue
		}
		visited[u] = true
		for _, e := range cg.adj[u] {
			nd := d + e.weight
			if cur, ok := dist[e.to]; !ok || nd < cur {
				dist[e.to] = nd
				prev[e.to] = e
				heap.Push(&pq, &nodeItemf{id: e.to, dist: nd})
			}
		}
	}

	out := make(map[substrate.NodeID][]compositeHop, len(dist))
	for v := range dist {
		if v == src {
			out[v] = nil
			continue
		}
		var chain []compositeHop
		cur := v
		for cur != src {
			hop, ok := prev[cur]
			if !ok {
				break
			}
			chain = append(chain, hop)
			cur = hop.from
		}
		for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
			chain[i], chain[j] = chain[j], chain[i]
		}
		out[v] = chain
	}
	return out, true
}

// expand re-expands a chain of composite hops into a concrete Path:
// synthetic edges become the intra-domain hop sequence Local(domain, from,
// to, bwFloor) already validated to exist when the composite graph was
// built; real inter-domain links become themselves.
func expand(net *substrate.Network, chain []compositeHop, bwFloor float64) (Path, error) {
	var hops []substrate.LinkID
	for _, hop := range chain {
		if !hop.synthetic {
			hops = append(hops, hop.link)
			continue
		}
		dom, err := net.Domain(hop.domain)
		if err != nil {
			return Path{}, err
		}
		p, err := Local(net, dom, hop.from, hop.to, bwFloor)
		if err != nil {
			return Path{}, err
		}
		hops = append(hops, p.Hops...)
	}
	return Path{Hops: hops}, nil
}

type nodeItemf struct {
	id   substrate.NodeID
	dist float64
}

type nodePQf []*nodeItemf

func (pq nodePQf) Len() int            { return len(pq) }
func (pq nodePQf) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQf) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQf) Push(x interface{}) { *pq = append(*pq, x.(*nodeItemf)) }
func (pq *nodePQf) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
