// Package pso implements spec.md §4.E: an integer-index particle swarm
// search over candidate lists produced by the candidate package. A particle
// is a vector of indices, one per virtual node, into that node's candidate
// list; fitness combines node placement cost with the routed cost of every
// virtual link at the particle's implied mapping.
//
// Configuration follows the same functional-options shape the rest of this
// module uses for construction-time knobs (the lvlath builder package's
// BuilderOption / WithSeed / WithRand shape): a Config carries sane
// defaults (P=50, I=30, w=0.7, c1=c2=1.5, mutation rate 0.1) and is built
// from zero or more Option values, with the last WithRand/WithSeed call
// winning.
package pso
