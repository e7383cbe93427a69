package pso_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/vne/candidate"
	"github.com/katalvlaran/vne/pso"
	"github.com/katalvlaran/vne/substrate"
	"github.com/katalvlaran/vne/vnetwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleDomainNetwork(t *testing.T) *substrate.Network {
	t.Helper()
	net := substrate.NewNetwork()
	dom := net.AddDomain()
	a, err := net.AddNode(dom, 100, 1, 1)
	require.NoError(t, err)
	b, err := net.AddNode(dom, 100, 2, 1)
	require.NoError(t, err)
	_, err = net.AddIntraLink(dom, a, b, 1000, 0.1, 1.0)
	require.NoError(t, err)
	return net
}

func TestSearch_FindsFiniteFitnessForFeasibleRequest(t *testing.T) {
	net := singleDomainNetwork(t)

	vnet := vnetwork.VirtualNetwork{
		Nodes: []vnetwork.VNode{{ID: 0, CPUDemand: 10}, {ID: 1, CPUDemand: 10}},
		Links: []vnetwork.VLink{{ID: 0, Src: 0, Dst: 1, Bandwidth: 50}},
	}
	cands, err := candidate.Select(net, vnet)
	require.NoError(t, err)

	best, fit := pso.Search(net, vnet, cands, pso.WithSeed(42), pso.WithParticles(8), pso.WithIterations(5))
	require.Len(t, best, 2)
	assert.False(t, math.IsInf(fit, 1))

	for j, idx := range best {
		assert.True(t, idx >= 0 && idx < len(cands[j]))
	}
}

func TestSearch_DeterministicWithSameSeed(t *testing.T) {
	net := singleDomainNetwork(t)
	vnet := vnetwork.VirtualNetwork{
		Nodes: []vnetwork.VNode{{ID: 0, CPUDemand: 10}, {ID: 1, CPUDemand: 10}},
		Links: []vnetwork.VLink{{ID: 0, Src: 0, Dst: 1, Bandwidth: 50}},
	}
	cands, err := candidate.Select(net, vnet)
	require.NoError(t, err)

	best1, fit1 := pso.Search(net, vnet, cands, pso.WithSeed(7), pso.WithParticles(10), pso.WithIterations(10))
	best2, fit2 := pso.Search(net, vnet, cands, pso.WithSeed(7), pso.WithParticles(10), pso.WithIterations(10))

	assert.Equal(t, best1, best2)
	assert.Equal(t, fit1, fit2)
}

func TestSearch_InfeasibleLinkYieldsInfiniteFitness(t *testing.T) {
	// Each virtual node is pinned to its own domain, so no particle can map
	// both onto one substrate node (which would route as an empty path).
	net := substrate.NewNetwork()
	d0 := net.AddDomain()
	d1 := net.AddDomain()
	a, err := net.AddNode(d0, 100, 1, 1)
	require.NoError(t, err)
	b, err := net.AddNode(d1, 100, 1, 1)
	require.NoError(t, err)
	require.NoError(t, net.MarkBoundary(d0, a))
	require.NoError(t, net.MarkBoundary(d1, b))
	_, err = net.AddInterLink(d0, d1, a, b, 10, 0.1, 1.0) // too little bandwidth
	require.NoError(t, err)

	vnet := vnetwork.VirtualNetwork{
		Nodes: []vnetwork.VNode{
			{ID: 0, CPUDemand: 1, PermittedDomains: []substrate.DomainID{d0}},
			{ID: 1, CPUDemand: 1, PermittedDomains: []substrate.DomainID{d1}},
		},
		Links: []vnetwork.VLink{{ID: 0, Src: 0, Dst: 1, Bandwidth: 500}},
	}
	cands, err := candidate.Select(net, vnet)
	require.NoError(t, err)

	_, fit := pso.Search(net, vnet, cands, pso.WithSeed(1), pso.WithParticles(4), pso.WithIterations(3))
	assert.True(t, math.IsInf(fit, 1))
}
