package dataset_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/vne/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "substrate_network": {
    "domains": [
      { "domain_id": 0,
        "nodes": [
          { "node_id": 0, "cpu_capacity": 100, "cost_per_unit": 1, "delay": 1 },
          { "node_id": 1, "cpu_capacity": 100, "cost_per_unit": 2, "delay": 1, "available_cpu": 40 }
        ],
        "links": [
          { "src": 0, "dst": 1, "bandwidth": 1000, "cost_per_unit": 0.1, "delay": 1, "available_bw": 400 }
        ],
        "boundary_nodes": [1]
      },
      { "domain_id": 1,
        "nodes": [
          { "node_id": 2, "cpu_capacity": 50, "cost_per_unit": 1, "delay": 1 }
        ],
        "links": [],
        "boundary_nodes": [2]
      }
    ],
    "inter_domain_links": [
      { "src_domain": 0, "dst_domain": 1, "src": 1, "dst": 2, "bandwidth": 500, "cost_per_unit": 0.2, "delay": 2 }
    ]
  },
  "virtual_requests": [
    { "vnetwork": { "nodes": [ { "id": 0, "cpu_demand": 10, "domains": [] }, { "id": 1, "cpu_demand": 10, "domains": [0] } ],
                    "links": [ { "src": 0, "dst": 1, "bandwidth": 50 } ] },
      "arrival_time": 0, "lifetime": 100 }
  ]
}`

func TestDecodeAndMaterialize(t *testing.T) {
	ds, err := dataset.Decode(strings.NewReader(sampleJSON))
	require.NoError(t, err)
	require.Len(t, ds.SubstrateNetwork.Domains, 2)
	require.Len(t, ds.VirtualRequests, 1)

	net, reqs, err := dataset.Materialize(ds)
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	n1, err := net.Node(1)
	require.NoError(t, err)
	assert.Equal(t, 40.0, n1.AvailableCPU)

	l0, err := net.Link(0)
	require.NoError(t, err)
	assert.Equal(t, 400.0, l0.AvailableBW)

	req := reqs[0]
	assert.Equal(t, 100.0, req.Lifetime)
	require.Len(t, req.Network.Nodes, 2)
	assert.Empty(t, req.Network.Nodes[0].PermittedDomains)
	require.Len(t, req.Network.Nodes[1].PermittedDomains, 1)
}

func TestMaterialize_AvailableExceedsCapacityFails(t *testing.T) {
	bad := strings.Replace(sampleJSON, `"available_cpu": 40`, `"available_cpu": 4000`, 1)
	ds, err := dataset.Decode(strings.NewReader(bad))
	require.NoError(t, err)
	_, _, err = dataset.Materialize(ds)
	assert.Error(t, err)
}
