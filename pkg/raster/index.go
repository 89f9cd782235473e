// Package raster renders way ids into small query tiles in software. It
// stands in for a GPU rasterization backend: an R-tree of way bounds finds
// the candidates near a tile and a line walk draws them into the grid.
package raster

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"

	"github.com/osmnav/wayplanner/pkg/graph"
)

// WayIndex holds each routable way's polyline geometry and an R-tree over
// the way bounding boxes, keyed by way id. Ways with fewer than 2 nodes are
// not indexed: they draw nothing and cannot be refined by the picker.
type WayIndex struct {
	lines map[int32]orb.LineString
	tree  rtree.RTreeG[int32]
}

func NewWayIndex(data *graph.Data) *WayIndex {
	idx := &WayIndex{
		lines: make(map[int32]orb.LineString, len(data.Ways)),
	}

	for w := range data.Ways {
		wayNodes := data.Ways[w].Nodes
		if len(wayNodes) < 2 {
			continue
		}

		line := make(orb.LineString, 0, len(wayNodes))
		for _, nodeID := range wayNodes {
			coord := data.Nodes[nodeID].GeoCoord()
			line = append(line, orb.Point{coord.Long, coord.Lat})
		}

		bound := line.Bound()
		idx.lines[int32(w)] = line
		idx.tree.Insert(
			[2]float64{bound.Min[0], bound.Min[1]},
			[2]float64{bound.Max[0], bound.Max[1]},
			int32(w),
		)
	}

	return idx
}

// Search returns the ids of ways whose bounding boxes intersect the query
// box, in ascending way id order.
func (idx *WayIndex) Search(minLong, minLat, maxLong, maxLat float64) []int32 {
	result := make([]int32, 0)
	idx.tree.Search(
		[2]float64{minLong, minLat},
		[2]float64{maxLong, maxLat},
		func(min, max [2]float64, wayID int32) bool {
			result = append(result, wayID)
			return true
		},
	)

	// The tree reports matches in traversal order; sort so draw order is
	// stable across rebuilds.
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

func (idx *WayIndex) Line(wayID int32) orb.LineString {
	return idx.lines[wayID]
}

func (idx *WayIndex) Size() int {
	return idx.tree.Len()
}
