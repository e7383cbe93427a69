// Package resourcemgr implements spec.md §4.F: the transactional resource
// manager. Commit deducts CPU for a node mapping and bandwidth for each
// routed virtual link, rolling back everything it deducted so far the
// moment any step fails. Release restores exactly what a stored Snapshot
// recorded, without ever consulting the router again — the central
// correctness lever that keeps release exact even after the residual view
// has drifted (spec.md §4.F, §9).
//
// Manager also owns the committed-mapping table (spec.md §3: "Committed
// mapping (owned by the resource manager)"), keyed by RequestID and kept in
// insertion order so ReleaseExpired can do a single linear sweep.
package resourcemgr
