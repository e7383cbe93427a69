// Package candidate implements spec.md §4.D: for each virtual node of a
// request, the list of substrate nodes that could feasibly host it — in
// permitted domains, with enough available CPU. An empty list for any
// virtual node fails the whole request immediately.
package candidate
