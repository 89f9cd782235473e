package graph

import (
	"math"

	"github.com/osmnav/wayplanner/pkg/geo"
)

// Node is a single map coordinate in decimicro-degrees (degrees * 1e7).
// Height is in meters and nil when no elevation data was available.
type Node struct {
	Lat    int32    `json:"lat"`
	Long   int32    `json:"long"`
	Height *float64 `json:"height,omitempty"`
}

func (n *Node) GeoCoord() geo.GeoCoord {
	return geo.GeoCoord{
		Long: float64(n.Long) / geo.DecimicroScale,
		Lat:  float64(n.Lat) / geo.DecimicroScale,
	}
}

// Way is an ordered polyline of node indices with its raw "key/value" tag
// strings. Consecutive entries in Nodes are graph-adjacent.
type Way struct {
	Tags  []string `json:"tags"`
	Nodes []int    `json:"nodes"`
}

// Data is the healed graph source: node indices referenced by ways are
// dense, 0-based positions into Nodes. Immutable once loaded.
type Data struct {
	Nodes []Node `json:"nodes"`
	Ways  []Way  `json:"ways"`
}

// NoWay is the sentinel way id meaning "no way selected/found".
const NoWay int32 = -1

// WayPosition locates a point along a way's polyline: the segment between
// way.Nodes[NodeIndex] and way.Nodes[NodeIndex+1], interpolated by
// DistanceToNext in [0,1).
type WayPosition struct {
	WayID          int32   `json:"way_id"`
	NodeIndex      int     `json:"node_index"`
	DistanceToNext float64 `json:"distance_to_next"`
}

func NoWayPosition() WayPosition {
	return WayPosition{WayID: NoWay}
}

func (p WayPosition) Valid() bool {
	return p.WayID != NoWay
}

// NodeAt returns the graph node index at the start of the segment the
// position points into.
func (d *Data) NodeAt(pos WayPosition) int {
	return d.Ways[pos.WayID].Nodes[pos.NodeIndex]
}

// PositionCoord interpolates a WayPosition to a geo coordinate. The second
// return is false for the sentinel position.
func (d *Data) PositionCoord(pos WayPosition) (geo.GeoCoord, bool) {
	if !pos.Valid() {
		return geo.GeoCoord{}, false
	}

	way := &d.Ways[pos.WayID]
	c1 := d.Nodes[way.Nodes[pos.NodeIndex]].GeoCoord()
	c2 := d.Nodes[way.Nodes[pos.NodeIndex+1]].GeoCoord()

	return geo.GeoCoord{
		Long: (c2.Long-c1.Long)*pos.DistanceToNext + c1.Long,
		Lat:  (c2.Lat-c1.Lat)*pos.DistanceToNext + c1.Lat,
	}, true
}

// Bounds returns the south-west and north-east corners of the node set.
func (d *Data) Bounds() (geo.GeoCoord, geo.GeoCoord) {
	min := geo.GeoCoord{Long: math.Inf(1), Lat: math.Inf(1)}
	max := geo.GeoCoord{Long: math.Inf(-1), Lat: math.Inf(-1)}
	for i := range d.Nodes {
		c := d.Nodes[i].GeoCoord()
		min.Long = math.Min(min.Long, c.Long)
		min.Lat = math.Min(min.Lat, c.Lat)
		max.Long = math.Max(max.Long, c.Long)
		max.Lat = math.Max(max.Lat, c.Lat)
	}
	return min, max
}
