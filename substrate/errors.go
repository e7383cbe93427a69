package substrate

import "errors"

// Sentinel errors returned by the substrate package.
var (
	// ErrNodeNotFound indicates an operation referenced a node id that does
	// not exist in the network.
	ErrNodeNotFound = errors.New("substrate: node not found")

	// ErrLinkNotFound indicates an operation referenced a link id that does
	// not exist in the network.
	ErrLinkNotFound = errors.New("substrate: link not found")

	// ErrDomainNotFound indicates an operation referenced a domain id that
	// does not exist in the network.
	ErrDomainNotFound = errors.New("substrate: domain not found")

	// ErrInsufficientResource indicates a Deduct* call would drive an
	// available quantity below zero. The ledger is left unchanged.
	ErrInsufficientResource = errors.New("substrate: insufficient resource")

	// ErrNegativeAmount indicates a Deduct*/Restore* call was given a
	// negative amount, which is never meaningful for a capacity delta.
	ErrNegativeAmount = errors.New("substrate: negative amount")
)
