// Package viewport maps between screen pixels and geographic coordinates
// for a pannable, zoomable map view.
package viewport

import (
	"math"

	"github.com/osmnav/wayplanner/pkg/geo"
)

// Transform holds the mutable pan/zoom state. Scale is a multiplicative
// zoom factor; only ratios between scales are meaningful.
type Transform struct {
	Scale  float64
	Center geo.GeoCoord
}

func New(scale float64, center geo.GeoCoord) *Transform {
	return &Transform{Scale: scale, Center: center}
}

// PixelToGeo maps a screen pixel to the geo coordinate under it. The
// horizontal axis is corrected by the viewport aspect ratio and divided by
// cos(center latitude) so one degree of longitude spans roughly the same
// screen distance as one degree of latitude near the current view.
func (t *Transform) PixelToGeo(pixel geo.PixelCoord, size geo.Size) geo.GeoCoord {
	width := float64(size.Width)
	height := float64(size.Height)

	xRel := ((pixel.X/width)*2.0 - 1.0) * width / height
	yRel := (1.0-pixel.Y/height)*2.0 - 1.0

	xLongRel := xRel / t.Scale / math.Cos(geo.DegToRad(t.Center.Lat))
	yLatRel := yRel / t.Scale

	return geo.GeoCoord{
		Long: xLongRel + t.Center.Long,
		Lat:  yLatRel + t.Center.Lat,
	}
}

// GeoToPixel is the inverse of PixelToGeo for the same viewport size.
func (t *Transform) GeoToPixel(coord geo.GeoCoord, size geo.Size) geo.PixelCoord {
	width := float64(size.Width)
	height := float64(size.Height)

	xRel := (coord.Long - t.Center.Long) * t.Scale * math.Cos(geo.DegToRad(t.Center.Lat))
	yRel := (coord.Lat - t.Center.Lat) * t.Scale

	return geo.PixelCoord{
		X: (xRel*height/width + 1.0) / 2.0 * width,
		Y: (1.0 - (yRel+1.0)/2.0) * height,
	}
}

// Zoom multiplies the scale by factor while keeping the geo coordinate
// under the anchor pixel fixed: 2.0 halves the longitude span of the view,
// 0.5 doubles it.
func (t *Transform) Zoom(factor float64, anchor geo.PixelCoord, size geo.Size) {
	anchorCoord := t.PixelToGeo(anchor, size)
	t.Scale *= factor

	newAnchorCoord := t.PixelToGeo(anchor, size)
	t.Center.Long -= newAnchorCoord.Long - anchorCoord.Long
	t.Center.Lat -= newAnchorCoord.Lat - anchorCoord.Lat
}

// Pan moves the view by a pixel offset: the view is re-centered on the geo
// coordinate that the shifted viewport center points at.
func (t *Transform) Pan(offset geo.PixelOffset, size geo.Size) {
	centerPixel := geo.PixelCoord{
		X: float64(size.Width) / 2.0,
		Y: float64(size.Height) / 2.0,
	}

	newCenterPixel := geo.PixelCoord{
		X: centerPixel.X + offset.X,
		Y: centerPixel.Y + offset.Y,
	}

	t.Center = t.PixelToGeo(newCenterPixel, size)
}
