package resourcemgr_test

import (
	"testing"

	"github.com/katalvlaran/vne/resourcemgr"
	"github.com/katalvlaran/vne/substrate"
	"github.com/katalvlaran/vne/vnetwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parallelLinks(t *testing.T) (*substrate.Network, substrate.NodeID, substrate.NodeID) {
	t.Helper()
	net := substrate.NewNetwork()
	dom := net.AddDomain()
	a, _ := net.AddNode(dom, 100, 1, 1)
	b, _ := net.AddNode(dom, 100, 1, 1)
	_, err := net.AddIntraLink(dom, a, b, 60, 0.1, 1.0)
	require.NoError(t, err)
	_, err = net.AddIntraLink(dom, a, b, 60, 0.1, 1.0)
	require.NoError(t, err)
	return net, a, b
}

func TestCommit_RollsBackOnOvercommit(t *testing.T) {
	net, a, b := parallelLinks(t)
	mgr := resourcemgr.NewManager(net)

	vnet := vnetwork.VirtualNetwork{
		Nodes: []vnetwork.VNode{{ID: 0, CPUDemand: 0}, {ID: 1, CPUDemand: 0}},
		Links: []vnetwork.VLink{
			{ID: 0, Src: 0, Dst: 1, Bandwidth: 50},
			{ID: 1, Src: 0, Dst: 1, Bandwidth: 50},
			{ID: 2, Src: 0, Dst: 1, Bandwidth: 50},
		},
	}
	mapping := map[vnetwork.VNodeID]substrate.NodeID{0: a, 1: b}

	_, err := mgr.Commit(vnet, mapping)
	require.Error(t, err)

	// both A-B links must be back to full 60 capacity (spec.md §8 scenario 4).
	for _, lid := range []substrate.LinkID{0, 1} {
		l, err := net.Link(lid)
		require.NoError(t, err)
		assert.Equal(t, 60.0, l.AvailableBW)
	}
}

func TestCommitReleaseRoundTrip(t *testing.T) {
	net, a, b := parallelLinks(t)
	mgr := resourcemgr.NewManager(net)

	vnet := vnetwork.VirtualNetwork{
		Nodes: []vnetwork.VNode{{ID: 0, CPUDemand: 10}, {ID: 1, CPUDemand: 20}},
		Links: []vnetwork.VLink{{ID: 0, Src: 0, Dst: 1, Bandwidth: 50}},
	}
	mapping := map[vnetwork.VNodeID]substrate.NodeID{0: a, 1: b}

	paths, err := mgr.Commit(vnet, mapping)
	require.NoError(t, err)

	id := resourcemgr.NewRequestID()
	mgr.Store(id, vnet, mapping, paths, 100, 42)

	require.NoError(t, mgr.Release(id))

	na, _ := net.Node(a)
	nb, _ := net.Node(b)
	assert.Equal(t, 100.0, na.AvailableCPU)
	assert.Equal(t, 100.0, nb.AvailableCPU)
	l0, _ := net.Link(0)
	l1, _ := net.Link(1)
	assert.Equal(t, 60.0, l0.AvailableBW) // whichever link carried the 50 is fully restored
	assert.Equal(t, 60.0, l1.AvailableBW)
}

func TestReleaseExpired_InsertionOrderSweep(t *testing.T) {
	net := substrate.NewNetwork()
	dom := net.AddDomain()
	a, _ := net.AddNode(dom, 100, 1, 1)
	mgr := resourcemgr.NewManager(net)

	vnet := vnetwork.VirtualNetwork{Nodes: []vnetwork.VNode{{ID: 0, CPUDemand: 10}}}
	mapping := map[vnetwork.VNodeID]substrate.NodeID{0: a}

	paths, err := mgr.Commit(vnet, mapping)
	require.NoError(t, err)
	id1 := resourcemgr.NewRequestID()
	mgr.Store(id1, vnet, mapping, paths, 10, 1)

	paths2, err := mgr.Commit(vnet, mapping)
	require.NoError(t, err)
	id2 := resourcemgr.NewRequestID()
	mgr.Store(id2, vnet, mapping, paths2, 50, 1)

	released, err := mgr.ReleaseExpired(15)
	require.NoError(t, err)
	assert.Equal(t, []resourcemgr.RequestID{id1}, released)

	_, ok := mgr.Get(id2)
	assert.True(t, ok)

	n, _ := net.Node(a)
	assert.Equal(t, 90.0, n.AvailableCPU) // id1's 10 released, id2's 10 still held
}

func TestRelease_UnknownRequest(t *testing.T) {
	net := substrate.NewNetwork()
	mgr := resourcemgr.NewManager(net)
	err := mgr.Release(resourcemgr.NewRequestID())
	assert.ErrorIs(t, err, resourcemgr.ErrUnknownRequest)
}
