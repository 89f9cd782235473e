package osmparse

import (
	"strings"
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmnav/wayplanner/pkg/elevation"
	"github.com/osmnav/wayplanner/pkg/graph"
)

func TestHealNodes(t *testing.T) {
	nodes := map[osm.NodeID]graph.Node{
		1000: {Lat: 10, Long: 10},
		2000: {Lat: 20, Long: 20},
		3000: {Lat: 30, Long: 30},
		4000: {Lat: 40, Long: 40}, // referenced by no way
	}

	t.Run("remaps to dense first-use indices", func(t *testing.T) {
		data := healNodes(nodes, []rawWay{
			{tags: []string{"highway/primary"}, refs: []osm.NodeID{3000, 1000}},
			{tags: []string{"highway/service"}, refs: []osm.NodeID{1000, 2000}},
		})

		require.Len(t, data.Nodes, 3, "unreferenced nodes are dropped")
		require.Len(t, data.Ways, 2)

		// 3000 is used first, then 1000, then 2000.
		assert.Equal(t, graph.Node{Lat: 30, Long: 30}, data.Nodes[0])
		assert.Equal(t, graph.Node{Lat: 10, Long: 10}, data.Nodes[1])
		assert.Equal(t, graph.Node{Lat: 20, Long: 20}, data.Nodes[2])

		assert.Equal(t, []int{0, 1}, data.Ways[0].Nodes)
		assert.Equal(t, []int{1, 2}, data.Ways[1].Nodes)
	})

	t.Run("skips ways with missing node refs", func(t *testing.T) {
		data := healNodes(nodes, []rawWay{
			{tags: []string{"highway/primary"}, refs: []osm.NodeID{1000, 9999}},
			{tags: []string{"highway/service"}, refs: []osm.NodeID{2000, 3000}},
		})

		require.Len(t, data.Ways, 1)
		assert.Equal(t, []string{"highway/service"}, data.Ways[0].Tags)
		assert.Len(t, data.Nodes, 2)
	})

	t.Run("healed output passes validation", func(t *testing.T) {
		data := healNodes(nodes, []rawWay{
			{refs: []osm.NodeID{1000, 2000, 3000, 1000}},
		})
		assert.NoError(t, data.Validate())
	})

	t.Run("empty input", func(t *testing.T) {
		data := healNodes(nil, nil)
		assert.Empty(t, data.Nodes)
		assert.Empty(t, data.Ways)
	})
}

func TestAttachHeights(t *testing.T) {
	gridText := `ncols 2
nrows 1
xllcorner 0.0
yllcorner 0.0
cellsize 1.0
NODATA_value -9999
120 -9999
`
	grid, err := elevation.Parse(strings.NewReader(gridText))
	require.NoError(t, err)

	data := &graph.Data{
		Nodes: []graph.Node{
			{Lat: 6_000_000, Long: 2_000_000},   // 120m cell
			{Lat: 6_000_000, Long: 12_000_000},  // nodata cell
			{Lat: 6_000_000, Long: 500_000_000}, // outside the grid
		},
	}

	matched := AttachHeights(data, grid)

	assert.Equal(t, 1, matched)
	require.NotNil(t, data.Nodes[0].Height)
	assert.Equal(t, 120.0, *data.Nodes[0].Height)
	assert.Nil(t, data.Nodes[1].Height)
	assert.Nil(t, data.Nodes[2].Height)
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse("testdata/does-not-exist.osm.pbf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open map file")
}
