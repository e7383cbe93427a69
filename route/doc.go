// Package route computes bandwidth-filtered shortest paths over a
// substrate.Network.
//
// Local runs Dijkstra restricted to one domain's intra-domain links (§4.B).
// Global composes Local with inter-domain stitching: same-domain requests
// delegate straight to Local; cross-domain requests enumerate boundary-node
// pairs and run Dijkstra over a composite graph whose edges are the
// inter-domain links plus one synthetic edge per boundary pair inside each
// domain, weighted by that domain's intra-domain shortest-path cost (§4.C).
// Synthetic edges are re-expanded into concrete substrate-link hops via
// Local at materialisation time, so every Path this package returns is a
// ready-to-commit hop sequence, never a pointer into the composite graph.
//
// Edge weight is always delay + per_unit_cost (or delay + per_unit_cost·bw
// for the composite graph's domain-crossing edges, per §4.C); bandwidth is a
// hard filter, never part of the weight itself.
package route
