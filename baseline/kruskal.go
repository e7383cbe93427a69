package baseline

import (
	"errors"
	"sort"

	"github.com/katalvlaran/vne/route"
	"github.com/katalvlaran/vne/substrate"
)

// ErrNoTreePath is returned by KruskalPath when src and dst fall in
// different components of the bandwidth-restricted minimum spanning
// forest.
var ErrNoTreePath = errors.New("baseline: no path in minimum spanning forest")

// unionFind is a disjoint-set over substrate.NodeID with path compression
// and union by rank, grounded on prim_kruskal.Kruskal's inline DSU.
type unionFind struct {
	parent map[substrate.NodeID]substrate.NodeID
	rank   map[substrate.NodeID]int
}

func newUnionFind() *unionFind {
	return &unionFind{parent: make(map[substrate.NodeID]substrate.NodeID), rank: make(map[substrate.NodeID]int)}
}

func (u *unionFind) add(n substrate.NodeID) {
	if _, ok := u.parent[n]; !ok {
		u.parent[n] = n
		u.rank[n] = 0
	}
}

func (u *unionFind) find(n substrate.NodeID) substrate.NodeID {
	for u.parent[n] != n {
		u.parent[n] = u.parent[u.parent[n]]
		n = u.parent[n]
	}
	return n
}

func (u *unionFind) union(a, b substrate.NodeID) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
	return true
}

// KruskalPath builds the minimum spanning forest of net restricted to
// links with AvailableBW >= bwFloor (weighted by Link.Weight(bwFloor)),
// then returns the unique tree path between src and dst. Returns
// ErrNoTreePath if they land in different components.
func KruskalPath(net *substrate.Network, src, dst substrate.NodeID, bwFloor float64) (route.Path, error) {
	if src == dst {
		return route.Path{}, nil
	}

	type weightedLink struct {
		id     substrate.LinkID
		src    substrate.NodeID
		dst    substrate.NodeID
		weight float64
	}

	var edges []weightedLink
	for _, dom := range net.Domains() {
		for _, lid := range dom.Links {
			l, err := net.Link(lid)
			if err != nil {
				return route.Path{}, err
			}
			if l.AvailableBW >= bwFloor {
				edges = append(edges, weightedLink{id: l.ID, src: l.Src, dst: l.Dst, weight: l.Weight(bwFloor)})
			}
		}
	}
	for _, l := range net.InterLinks() {
		if l.AvailableBW >= bwFloor {
			edges = append(edges, weightedLink{id: l.ID, src: l.Src, dst: l.Dst, weight: l.Weight(bwFloor)})
		}
	}

	sort.SliceStable(edges, func(i, j int) bool { return edges[i].weight < edges[j].weight })

	uf := newUnionFind()
	uf.add(src)
	uf.add(dst)
	adj := make(map[substrate.NodeID][]struct {
		to substrate.NodeID
		id substrate.LinkID
	})
	for _, e := range edges {
		uf.add(e.src)
		uf.add(e.dst)
		if uf.union(e.src, e.dst) {
			adj[e.src] = append(adj[e.src], struct {
				to substrate.NodeID
				id substrate.LinkID
			}{e.dst, e.id})
			adj[e.dst] = append(adj[e.dst], struct {
				to substrate.NodeID
				id substrate.LinkID
			}{e.src, e.id})
		}
	}

	if uf.find(src) != uf.find(dst) {
		return route.Path{}, ErrNoTreePath
	}

	// BFS over the spanning forest to recover the unique src→dst path.
	type frame struct {
		node substrate.NodeID
		via  substrate.LinkID
		from substrate.NodeID
		used bool
	}
	visited := map[substrate.NodeID]frame{src: {node: src}}
	queue := []substrate.NodeID{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == dst {
			break
		}
		for _, e := range adj[cur] {
			if _, seen := visited[e.to]; seen {
				continue
			}
			visited[e.to] = frame{node: e.to, via: e.id, from: cur, used: true}
			queue = append(queue, e.to)
		}
	}

	f, ok := visited[dst]
	if !ok {
		return route.Path{}, ErrNoTreePath
	}
	var hops []substrate.LinkID
	for f.used {
		hops = append([]substrate.LinkID{f.via}, hops...)
		f = visited[f.from]
	}
	return route.Path{Hops: hops}, nil
}
