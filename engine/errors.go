package engine

import "errors"

// ErrInfeasible is returned by HandleRequest when the configured strategy
// found no particle/position with finite fitness — every explored mapping
// left at least one virtual link without a feasible path.
var ErrInfeasible = errors.New("engine: no feasible embedding found")
