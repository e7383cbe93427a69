package route

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/vne/substrate"
)

// Local computes the minimum-weight simple path from src to dst using only
// intra-domain links of dom with AvailableBW >= bwFloor. Edge weight is
// delay + per_unit_cost (bandwidth is a filter, not a weight); ties are
// broken by insertion order of the domain's link list (spec.md §4.B).
//
// Returns an empty Path, nil when src == dst. Returns ErrNoPath when no
// such path exists.
func Local(net *substrate.Network, dom *substrate.Domain, src, dst substrate.NodeID, bwFloor float64) (Path, error) {
	if src == dst {
		return Path{}, nil
	}

	adj, err := buildIntraAdjacency(net, dom, bwFloor)
	if err != nil {
		return Path{}, err
	}

	dist, prevHop, prevNode, ok := dijkstra(adj, src, dst)
	if !ok {
		return Path{}, ErrNoPath
	}
	_ = dist

	return reconstruct(src, dst, prevHop, prevNode), nil
}

// intraEdge is one directed traversal option discovered while scanning a
// domain's intra-domain links.
type intraEdge struct {
	to     substrate.NodeID
	link   substrate.LinkID
	weight float64
}

// buildIntraAdjacency builds an adjacency list over dom's intra-domain
// links with AvailableBW >= bwFloor, preserving the domain's link
// insertion order within each node's edge list (so tie-breaking by
// insertion order falls out of stable iteration, matching spec.md §4.B).
func buildIntraAdjacency(net *substrate.Network, dom *substrate.Domain, bwFloor float64) (map[substrate.NodeID][]intraEdge, error) {
	adj := make(map[substrate.NodeID][]intraEdge, len(dom.Nodes))
	for _, id := range dom.Nodes {
		adj[id] = nil
	}
	for _, lid := range dom.Links {
		l, err := net.Link(lid)
		if err != nil {
			return nil, err
		}
		if l.AvailableBW < bwFloor {
			continue
		}
		w := l.Delay + l.CostPerUnit
		adj[l.Src] = append(adj[l.Src], intraEdge{to: l.Dst, link: l.ID, weight: w})
		adj[l.Dst] = append(adj[l.Dst], intraEdge{to: l.Src, link: l.ID, weight: w})
	}
	return adj, nil
}

// dijkstra runs a lazy-decrease-key Dijkstra over adj from src, stopping
// once dst is finalized, using a container/heap priority queue over this
// package's own substrate.NodeID/LinkID vertex and edge-tag types.
func dijkstra(adj map[substrate.NodeID][]intraEdge, src, dst substrate.NodeID) (
	dist map[substrate.NodeID]float64,
	prevHop map[substrate.NodeID]substrate.LinkID,
	prevNode map[substrate.NodeID]substrate.NodeID,
	found bool,
) {
	dist = make(map[substrate.NodeID]float64, len(adj))
	prevHop = make(map[substrate.NodeID]substrate.LinkID, len(adj))
	prevNode = make(map[substrate.NodeID]substrate.NodeID, len(adj))
	visited := make(map[substrate.NodeID]bool, len(adj))

	for v := range adj {
		dist[v] = math.Inf(1)
	}
	dist[src] = 0

	pq := make(nodePQ, 0, len(adj))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: src, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == dst {
			found = true
			return
		}
		for _, e := range adj[u] {
			nd := d + e.weight
			if nd < dist[e.to] {
				dist[e.to] = nd
				prevHop[e.to] = e.link
				prevNode[e.to] = u
				heap.Push(&pq, &nodeItem{id: e.to, dist: nd})
			}
		}
	}
	return dist, prevHop, prevNode, false
}

// reconstruct walks prevNode/prevHop backwards from dst to src, returning
// the hop sequence in src-to-dst order.
func reconstruct(src, dst substrate.NodeID, prevHop map[substrate.NodeID]substrate.LinkID, prevNode map[substrate.NodeID]substrate.NodeID) Path {
	var hops []substrate.LinkID
	cur := dst
	for cur != src {
		hops = append(hops, prevHop[cur])
		cur = prevNode[cur]
	}
	// reverse into src->dst order
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}
	return Path{Hops: hops}
}

// nodeItem represents a vertex and its current distance from the source in
// the priority queue.
type nodeItem struct {
	id   substrate.NodeID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, following a
// lazy-decrease-key pattern: stale entries are pushed over, not updated in
// place, and skipped on pop via the visited set.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
