// Package dataset defines the JSON dataset format of spec.md §6: a
// substrate network (domains, intra-domain links, inter-domain links) plus
// an ordered list of virtual requests. The core itself never parses this
// format; dataset exists only so collaborators can produce and consume it
// compatibly, and so a driver can turn one into a *substrate.Network plus
// a slice of vnetwork.Request without hand-rolling the JSON shape.
package dataset
