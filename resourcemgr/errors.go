package resourcemgr

import "errors"

// Sentinel errors returned by the resourcemgr package.
var (
	// ErrInsufficientCPU is raised when Commit detects a CPU deficit on a
	// mapped node — e.g. because the PSO view had drifted from the
	// residual ledger by the time Commit ran (spec.md §7).
	ErrInsufficientCPU = errors.New("resourcemgr: insufficient CPU")

	// ErrInsufficientBandwidth is raised when Commit detects a bandwidth
	// deficit on a hop of a virtual link's chosen path.
	ErrInsufficientBandwidth = errors.New("resourcemgr: insufficient bandwidth")

	// ErrNoPath is raised when Commit-time routing fails for a virtual
	// link even though fitness-time routing succeeded (capacity drift).
	ErrNoPath = errors.New("resourcemgr: no path for virtual link")

	// ErrUnknownRequest is raised by Release (and surfaced through
	// ReleaseExpired) when the given RequestID has no live entry — a programmer error (double
	// release, or releasing an id that was never committed).
	ErrUnknownRequest = errors.New("resourcemgr: unknown or already-released request")
)
