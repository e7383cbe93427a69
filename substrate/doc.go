// Package substrate defines the physical multi-domain network that virtual
// requests are embedded onto: nodes and links arranged into domains, plus the
// residual-capacity ledger that the rest of the engine reads and mutates.
//
// Nodes, links and domains are addressed by stable integer ids rather than
// embedded by reference — every higher-level structure (a route, a node
// mapping, a committed snapshot) stores ids, not pointers, so it stays
// trivially copyable and free of identity pitfalls.
//
// The Network itself is the sole owner of all mutable residual capacity.
// Deduct*, Restore* and SetAvailableCPU are the only ways to mutate it;
// resourcemgr mutates it only through Deduct*/Restore*, and route,
// candidate and pso only read it.
//
//	net := substrate.NewNetwork()
//	d0 := net.AddDomain()
//	a, _ := net.AddNode(d0, 100, 1.0, 2.0)
//	b, _ := net.AddNode(d0, 100, 1.0, 2.0)
//	net.AddIntraLink(d0, a, b, 1000, 0.1, 1.0)
package substrate
