package route_test

import (
	"testing"

	"github.com/katalvlaran/vne/route"
	"github.com/katalvlaran/vne/substrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) (*substrate.Network, substrate.DomainID, [3]substrate.NodeID) {
	t.Helper()
	net := substrate.NewNetwork()
	dom := net.AddDomain()
	a, _ := net.AddNode(dom, 100, 1.0, 1.0)
	b, _ := net.AddNode(dom, 100, 1.0, 1.0)
	c, _ := net.AddNode(dom, 100, 1.0, 1.0)
	_, err := net.AddIntraLink(dom, a, b, 1000, 0.1, 1.0)
	require.NoError(t, err)
	_, err = net.AddIntraLink(dom, b, c, 1000, 0.1, 1.0)
	require.NoError(t, err)
	return net, dom, [3]substrate.NodeID{a, b, c}
}

func TestLocal_SameNodeIsEmptyPath(t *testing.T) {
	net, dom, nodes := triangle(t)
	d, err := net.Domain(dom)
	require.NoError(t, err)
	p, err := route.Local(net, d, nodes[0], nodes[0], 10)
	require.NoError(t, err)
	assert.True(t, p.Empty())
}

func TestLocal_FindsTwoHopPath(t *testing.T) {
	net, dom, nodes := triangle(t)
	d, err := net.Domain(dom)
	require.NoError(t, err)
	p, err := route.Local(net, d, nodes[0], nodes[2], 50)
	require.NoError(t, err)
	assert.Len(t, p.Hops, 2)
}

func TestLocal_NoPathUnderBandwidthFloor(t *testing.T) {
	net, dom, nodes := triangle(t)
	d, err := net.Domain(dom)
	require.NoError(t, err)
	_, err = route.Local(net, d, nodes[0], nodes[2], 5000)
	assert.ErrorIs(t, err, route.ErrNoPath)
}

// crossDomain builds spec.md §8 scenario 3's fixture: D0{X0,Y0 boundary
// Y0}, D1{X1,Y1 boundary Y1}, inter-link Y0-Y1 bw=500.
func crossDomain(t *testing.T) (net *substrate.Network, x0, y0, x1, y1 substrate.NodeID) {
	t.Helper()
	net = substrate.NewNetwork()
	d0 := net.AddDomain()
	d1 := net.AddDomain()
	x0, _ = net.AddNode(d0, 100, 1, 1)
	y0, _ = net.AddNode(d0, 100, 1, 1)
	x1, _ = net.AddNode(d1, 100, 1, 1)
	y1, _ = net.AddNode(d1, 100, 1, 1)
	require.NoError(t, net.MarkBoundary(d0, y0))
	require.NoError(t, net.MarkBoundary(d1, y1))
	_, err := net.AddIntraLink(d0, x0, y0, 1000, 0.1, 1.0)
	require.NoError(t, err)
	_, err = net.AddIntraLink(d1, x1, y1, 1000, 0.1, 1.0)
	require.NoError(t, err)
	_, err = net.AddInterLink(d0, d1, y0, y1, 500, 0.1, 1.0)
	require.NoError(t, err)
	return
}

func TestGlobal_CrossDomainStitch(t *testing.T) {
	net, x0, _, x1, _ := crossDomain(t)
	p, err := route.Global(net, x0, x1, 100)
	require.NoError(t, err)
	assert.Len(t, p.Hops, 3)
}

func TestGlobal_NoBoundaryFails(t *testing.T) {
	net := substrate.NewNetwork()
	d0 := net.AddDomain()
	d1 := net.AddDomain()
	a, _ := net.AddNode(d0, 10, 1, 1)
	b, _ := net.AddNode(d1, 10, 1, 1)
	_, err := route.Global(net, a, b, 1)
	assert.ErrorIs(t, err, route.ErrNoBoundary)
}

func TestGlobal_SameDomainDelegatesToLocal(t *testing.T) {
	net, _, nodes := triangle(t)
	p, err := route.Global(net, nodes[0], nodes[2], 50)
	require.NoError(t, err)
	assert.Len(t, p.Hops, 2)
}
