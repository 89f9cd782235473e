package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deg builds a node from decimal degrees.
func deg(lat, long float64) Node {
	return Node{
		Lat:  int32(math.Round(lat * 1e7)),
		Long: int32(math.Round(long * 1e7)),
	}
}

func TestNewGeoGraph(t *testing.T) {
	data := &Data{
		Nodes: []Node{deg(0, 0), deg(0, 1), deg(1, 1), deg(1, 0), deg(5, 5)},
		Ways: []Way{
			{Tags: []string{"highway/residential"}, Nodes: []int{0, 1, 2}},
			{Tags: []string{"highway/service"}, Nodes: []int{2, 3}},
		},
	}

	g := NewGeoGraph(data)

	t.Run("links way neighbors both ways", func(t *testing.T) {
		assert.ElementsMatch(t, []int{1}, g.Neighbors(0))
		assert.ElementsMatch(t, []int{0, 2}, g.Neighbors(1))
		assert.ElementsMatch(t, []int{1, 3}, g.Neighbors(2))
		assert.ElementsMatch(t, []int{2}, g.Neighbors(3))
	})

	t.Run("isolated node has no neighbors", func(t *testing.T) {
		assert.Empty(t, g.Neighbors(4))
	})

	t.Run("symmetric by construction", func(t *testing.T) {
		for a := 0; a < g.NodeCount(); a++ {
			for _, b := range g.Neighbors(a) {
				assert.Contains(t, g.Neighbors(b), a,
					"edge %d->%d has no reverse edge", a, b)
			}
		}
	})

	t.Run("deduplicates repeated links", func(t *testing.T) {
		dup := &Data{
			Nodes: []Node{deg(0, 0), deg(0, 1)},
			Ways: []Way{
				{Nodes: []int{0, 1}},
				{Nodes: []int{1, 0}},
			},
		}
		gg := NewGeoGraph(dup)
		assert.Len(t, gg.Neighbors(0), 1)
		assert.Len(t, gg.Neighbors(1), 1)
	})
}

func TestDistance(t *testing.T) {
	data := &Data{
		Nodes: []Node{deg(0, 0), deg(0, 1), deg(60, 0), deg(60, 1)},
		Ways:  []Way{{Nodes: []int{0, 1, 2, 3}}},
	}
	g := NewGeoGraph(data)

	t.Run("one degree of latitude is one unit", func(t *testing.T) {
		assert.InDelta(t, 1.0, g.Distance(0, 2)/60.0, 1e-6)
	})

	t.Run("longitude shrinks with latitude", func(t *testing.T) {
		equator := g.Distance(0, 1)
		north := g.Distance(2, 3)
		assert.InDelta(t, 1.0, equator, 1e-6)
		assert.InDelta(t, math.Cos(60*math.Pi/180), north, 1e-6)
	})

	// The metric scales longitude by the destination's latitude, so it is
	// not symmetric for nodes at different latitudes. Downstream search
	// assumes this exact formulation; this test documents the quirk.
	t.Run("asymmetric across latitudes", func(t *testing.T) {
		toNorth := g.Distance(1, 2)
		toEquator := g.Distance(2, 1)
		if toNorth == toEquator {
			t.Error("expected asymmetric distances for nodes at different latitudes")
		}
	})
}

func TestPositionCoord(t *testing.T) {
	data := &Data{
		Nodes: []Node{deg(0, 0), deg(0, 2)},
		Ways:  []Way{{Nodes: []int{0, 1}}},
	}

	t.Run("interpolates along the segment", func(t *testing.T) {
		coord, ok := data.PositionCoord(WayPosition{WayID: 0, NodeIndex: 0, DistanceToNext: 0.5})
		require.True(t, ok)
		assert.InDelta(t, 1.0, coord.Long, 1e-9)
		assert.InDelta(t, 0.0, coord.Lat, 1e-9)
	})

	t.Run("sentinel has no coordinate", func(t *testing.T) {
		_, ok := data.PositionCoord(NoWayPosition())
		assert.False(t, ok)
	})
}
