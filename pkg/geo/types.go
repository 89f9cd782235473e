package geo

// GeoCoord is a position in decimal degrees.
type GeoCoord struct {
	Long float64 `json:"long"`
	Lat  float64 `json:"lat"`
}

// PixelCoord is a position in screen pixels, origin at the top-left of the
// viewport, y growing downward.
type PixelCoord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PixelOffset is a movement in screen pixels.
type PixelOffset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a viewport size in pixels.
type Size struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
}

func ColorFromRGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}
