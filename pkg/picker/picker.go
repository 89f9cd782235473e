// Package picker answers "which way is nearest to this coordinate"
// interactively, without scanning every way on every query.
package picker

import (
	"math"

	"github.com/osmnav/wayplanner/pkg/geo"
	"github.com/osmnav/wayplanner/pkg/graph"
)

// TileResolution is the side length of the way-id raster tile.
const TileResolution = 11

const (
	// pickZoomFactor zooms the trial tile far in relative to the view so
	// the first attempt only covers geometry right under the cursor.
	pickZoomFactor = 50.0
	// minPickScale is the floor for zooming back out. Below this the tile
	// covers so much area that a match would be meaningless.
	minPickScale = 50.0
	// refineSteps samples each way segment at this resolution when
	// locating the exact position along the matched way.
	refineSteps = 10
)

// Rasterizer draws every routable way, color-coded by way id, into a
// TileResolution x TileResolution grid centered on the given coordinate.
// Cells carry a way id or -1 for "nothing drawn here". Must be
// deterministic for identical inputs.
type Rasterizer interface {
	RenderWayIDs(scale float64, center geo.GeoCoord) []int32
}

type SpatialPicker struct {
	data       *graph.Data
	rasterizer Rasterizer
}

func New(data *graph.Data, rasterizer Rasterizer) *SpatialPicker {
	return &SpatialPicker{data: data, rasterizer: rasterizer}
}

// FindNearestWay resolves the way nearest to the cursor coordinate. It
// rasterizes a tightly zoomed tile around the cursor and scans outward from
// the center; when the tile is empty it halves the scale (covering more
// area per pixel) and retries down to minPickScale. The sentinel position
// is a normal result meaning nothing is near the cursor.
//
// The farther the match is from the cursor, the less accurate the
// refinement becomes.
func (p *SpatialPicker) FindNearestWay(cursor geo.GeoCoord, viewScale float64) graph.WayPosition {
	position := graph.NoWayPosition()

	scale := viewScale * pickZoomFactor
	for scale > minPickScale {
		pixels := p.rasterizer.RenderWayIDs(scale, cursor)

		wayID := closestWayIDToCenter(pixels)
		position = p.findWayPosition(wayID, cursor)

		if position.Valid() {
			break
		}

		scale /= 2.0
	}

	return position
}

func pixelFromBuffer(pixels []int32, x, y int) int32 {
	return pixels[y*TileResolution+x]
}

// closestWayIDToCenter scans the tile in expanding concentric square rings
// from the center pixel and returns the first way id found. Each ring is
// walked in a fixed order (top row, bottom row, left column, right column
// per step) so results are deterministic.
func closestWayIDToCenter(pixels []int32) int32 {
	center := TileResolution / 2

	for dist := 0; dist <= center; dist++ {
		lower := center - dist
		higher := center + dist

		for i := lower; i <= higher; i++ {
			wayIDs := [4]int32{
				pixelFromBuffer(pixels, i, lower),
				pixelFromBuffer(pixels, i, higher),
				pixelFromBuffer(pixels, lower, i),
				pixelFromBuffer(pixels, higher, i),
			}

			for _, wayID := range wayIDs {
				if wayID != graph.NoWay {
					return wayID
				}
			}
		}
	}

	return graph.NoWay
}

// findWayPosition steps through the matched way's polyline, sampling each
// segment at refineSteps subdivisions, and keeps the sample closest to the
// cursor in degree space. Only the one matched way is walked.
func (p *SpatialPicker) findWayPosition(wayID int32, coord geo.GeoCoord) graph.WayPosition {
	if wayID == graph.NoWay {
		return graph.NoWayPosition()
	}

	wayNodes := p.data.Ways[wayID].Nodes
	if len(wayNodes) < 2 {
		// Cannot be refined to a segment position.
		return graph.NoWayPosition()
	}

	minDist2 := math.Inf(1)
	minDistNode := 0
	minDistFactor := 0.0

	for i := 0; i+1 < len(wayNodes); i++ {
		c1 := p.data.Nodes[wayNodes[i]].GeoCoord()
		c2 := p.data.Nodes[wayNodes[i+1]].GeoCoord()

		for step := 0; step < refineSteps; step++ {
			distanceIn := float64(step) / refineSteps
			sample := geo.GeoCoord{
				Long: (c2.Long-c1.Long)*distanceIn + c1.Long,
				Lat:  (c2.Lat-c1.Lat)*distanceIn + c1.Lat,
			}

			dist2 := geo.SquaredDist(sample, coord)
			if dist2 < minDist2 {
				minDist2 = dist2
				minDistNode = i
				minDistFactor = distanceIn
			}
		}
	}

	return graph.WayPosition{
		WayID:          wayID,
		NodeIndex:      minDistNode,
		DistanceToNext: minDistFactor,
	}
}
