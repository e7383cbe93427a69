// Package engine implements spec.md §4.G: the request lifecycle. It wires
// candidate selection, an embedding strategy (pso.Search by default, or
// baseline.Embed), and resourcemgr's transactional commit/release into one
// HandleRequest/ReleaseExpired/Cancel surface, and owns request id
// allocation.
package engine
