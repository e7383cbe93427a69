package engine_test

import (
	"testing"

	"github.com/katalvlaran/vne/candidate"
	"github.com/katalvlaran/vne/engine"
	"github.com/katalvlaran/vne/pso"
	"github.com/katalvlaran/vne/substrate"
	"github.com/katalvlaran/vne/vnetwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallNetwork(t *testing.T) *substrate.Network {
	t.Helper()
	net := substrate.NewNetwork()
	dom := net.AddDomain()
	a, err := net.AddNode(dom, 100, 1, 1)
	require.NoError(t, err)
	b, err := net.AddNode(dom, 100, 1, 1)
	require.NoError(t, err)
	_, err = net.AddIntraLink(dom, a, b, 1000, 0.1, 1.0)
	require.NoError(t, err)
	return net
}

func feasibleRequest() vnetwork.Request {
	return vnetwork.Request{
		Network: vnetwork.VirtualNetwork{
			Nodes: []vnetwork.VNode{{ID: 0, CPUDemand: 10}, {ID: 1, CPUDemand: 10}},
			Links: []vnetwork.VLink{{ID: 0, Src: 0, Dst: 1, Bandwidth: 50}},
		},
		Arrival:  0,
		Lifetime: 100,
	}
}

func TestHandleRequest_AcceptsFeasibleRequest(t *testing.T) {
	net := smallNetwork(t)
	e := engine.New(net, engine.WithPSOOptions(pso.WithSeed(1), pso.WithParticles(6), pso.WithIterations(4)))

	id, cost, snap, err := e.HandleRequest(feasibleRequest(), 0)
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.GreaterOrEqual(t, cost, 0.0)
	assert.Equal(t, 100.0, snap.Expiry)

	got, ok := e.Snapshot(id)
	require.True(t, ok)
	assert.Equal(t, snap, got)
	assert.Equal(t, snap.Cost, cost) // returned cost must match what was stored
}

func TestHandleRequest_NoCandidateRejectsWithoutMutatingLedger(t *testing.T) {
	net := smallNetwork(t)
	e := engine.New(net)

	req := vnetwork.Request{
		Network: vnetwork.VirtualNetwork{
			Nodes: []vnetwork.VNode{{ID: 0, CPUDemand: 10000}},
		},
		Lifetime: 10,
	}
	_, _, _, err := e.HandleRequest(req, 0)
	assert.ErrorIs(t, err, candidate.ErrNoCandidate)

	for _, id := range []substrate.NodeID{0, 1} {
		n, err := net.Node(id)
		require.NoError(t, err)
		assert.Equal(t, 100.0, n.AvailableCPU)
	}
}

func TestHandleRequest_BaselineStrategy(t *testing.T) {
	net := smallNetwork(t)
	e := engine.New(net, engine.WithBaseline())

	id, _, _, err := e.HandleRequest(feasibleRequest(), 0)
	require.NoError(t, err)
	require.NoError(t, e.Cancel(id))

	_, ok := e.Snapshot(id)
	assert.False(t, ok)
}

func TestReleaseExpired_SweepsThroughEngine(t *testing.T) {
	net := smallNetwork(t)
	e := engine.New(net, engine.WithPSOOptions(pso.WithSeed(2), pso.WithParticles(6), pso.WithIterations(4)))

	req := feasibleRequest()
	req.Lifetime = 5
	id, _, _, err := e.HandleRequest(req, 0)
	require.NoError(t, err)

	released, err := e.ReleaseExpired(10)
	require.NoError(t, err)
	assert.Contains(t, released, id)
}
