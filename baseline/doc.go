// Package baseline implements a simpler, non-metaheuristic embedding
// strategy: cheapest-feasible-candidate node selection followed by a
// minimum-spanning-tree-restricted path search for each virtual link. It
// satisfies the same (net, vnet, candidates) → (position, fitness) shape
// pso.Search does, so engine can be built against either strategy.
package baseline
