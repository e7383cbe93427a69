package route

import "errors"

// Sentinel errors returned by the route package.
var (
	// ErrNoPath indicates no simple path satisfies the requested bandwidth
	// floor between src and dst.
	ErrNoPath = errors.New("route: no path")

	// ErrNoBoundary indicates cross-domain routing was requested but the
	// source or destination domain has no boundary nodes.
	ErrNoBoundary = errors.New("route: domain has no boundary nodes")
)
