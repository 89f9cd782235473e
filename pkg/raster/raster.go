package raster

import (
	"math"

	"github.com/osmnav/wayplanner/pkg/geo"
	"github.com/osmnav/wayplanner/pkg/picker"
	"github.com/osmnav/wayplanner/pkg/viewport"
)

// TileRasterizer implements picker.Rasterizer. RenderWayIDs projects the
// ways near the tile through the same transform math as the main viewport
// (at aspect ratio 1) and walks their segments into the grid cell by cell.
// Ways draw in ascending id order, so on overlap the higher id wins in
// every cell, the same for identical inputs each time.
type TileRasterizer struct {
	index      *WayIndex
	resolution int
}

func New(index *WayIndex) *TileRasterizer {
	return &TileRasterizer{index: index, resolution: picker.TileResolution}
}

func (r *TileRasterizer) RenderWayIDs(scale float64, center geo.GeoCoord) []int32 {
	res := r.resolution
	pixels := make([]int32, res*res)
	for i := range pixels {
		pixels[i] = -1
	}

	size := geo.Size{Width: uint32(res), Height: uint32(res)}
	transform := viewport.New(scale, center)

	// Corners of the tile in geo space. Latitude decreases as pixel y
	// grows, so the top-left pixel is the north-west corner.
	nw := transform.PixelToGeo(geo.PixelCoord{X: 0, Y: 0}, size)
	se := transform.PixelToGeo(geo.PixelCoord{X: float64(res), Y: float64(res)}, size)

	for _, wayID := range r.index.Search(nw.Long, se.Lat, se.Long, nw.Lat) {
		line := r.index.Line(wayID)
		for i := 0; i+1 < len(line); i++ {
			a := transform.GeoToPixel(geo.GeoCoord{Long: line[i][0], Lat: line[i][1]}, size)
			b := transform.GeoToPixel(geo.GeoCoord{Long: line[i+1][0], Lat: line[i+1][1]}, size)
			r.drawSegment(pixels, a, b, wayID)
		}
	}

	return pixels
}

// drawSegment walks the segment in sub-cell steps and stamps the way id
// into every grid cell it passes through.
func (r *TileRasterizer) drawSegment(pixels []int32, a, b geo.PixelCoord, wayID int32) {
	res := r.resolution

	// Clip the parametric range to the tile so long segments that merely
	// cross the tile do not cost work proportional to their full length.
	fres := float64(res)
	tMin, tMax := 0.0, 1.0
	if !clipAxis(a.X, b.X-a.X, -1.0, fres+1.0, &tMin, &tMax) ||
		!clipAxis(a.Y, b.Y-a.Y, -1.0, fres+1.0, &tMin, &tMax) {
		return
	}

	x0 := a.X + (b.X-a.X)*tMin
	y0 := a.Y + (b.Y-a.Y)*tMin
	x1 := a.X + (b.X-a.X)*tMax
	y1 := a.Y + (b.Y-a.Y)*tMax

	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))*2.0) + 1
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		x := int(math.Floor(x0 + (x1-x0)*t))
		y := int(math.Floor(y0 + (y1-y0)*t))

		if x < 0 || x >= res || y < 0 || y >= res {
			continue
		}
		pixels[y*res+x] = wayID
	}
}

// clipAxis narrows [tMin, tMax] to where p + t*d lies within [lo, hi].
// Returns false when the segment misses the interval entirely.
func clipAxis(p, d, lo, hi float64, tMin, tMax *float64) bool {
	if d == 0 {
		return p >= lo && p <= hi
	}

	t0 := (lo - p) / d
	t1 := (hi - p) / d
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	*tMin = math.Max(*tMin, t0)
	*tMax = math.Min(*tMax, t1)
	return *tMin <= *tMax
}
