// Package vne is a virtual network embedding engine: it maps tenant-
// submitted virtual networks (CPU-demanding nodes, bandwidth-demanding
// links) onto a partitioned, multi-domain substrate network under a
// transactional resource ledger.
//
// Subpackages:
//
//	substrate/   — substrate nodes, links, domains and the residual ledger
//	route/       — per-domain and cross-domain shortest-path routing
//	vnetwork/    — the tenant-facing virtual network/request payload
//	candidate/   — per-virtual-node feasible substrate node lists
//	pso/         — particle swarm search over candidate lists
//	baseline/    — a simpler greedy + minimum-spanning-tree strategy
//	resourcemgr/ — transactional commit/release of committed mappings
//	engine/      — request lifecycle: accept, route, commit, expire
//	dataset/     — the external JSON dataset format
//
// Each subpackage is independently usable; engine wires them together into
// the accept/route/commit/release lifecycle of one running instance.
package vne
