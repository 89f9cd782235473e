package usecases

import (
	"github.com/osmnav/wayplanner/pkg/app"
	"github.com/osmnav/wayplanner/pkg/geo"
	"github.com/osmnav/wayplanner/pkg/graph"
)

// MapSession is the single-owner interactive core. It is not safe for
// concurrent use; PlannerService serializes access to it.
type MapSession interface {
	UpdateCursorPos(cursor *geo.PixelCoord, viewportSize geo.Size)
	Hover() graph.WayPosition
	PlannedPath() []geo.GeoCoord
	SelectedTags() []string
	SelectedPosition() (geo.GeoCoord, bool)
	Zoom(amount float64, zoomCenter geo.PixelCoord, viewportSize geo.Size)
	MoveMap(offset geo.PixelOffset, viewportSize geo.Size)
	StartPathPlan()
	ClearPathPlan()
	SetDebugMode(enable bool)
	SetHighlightList(highlights []app.Highlight) error
	FindNearestWay(cursor geo.GeoCoord) graph.WayPosition
	PlanBetween(start, end graph.WayPosition, debug bool) []geo.GeoCoord
	Viewport() (float64, geo.GeoCoord)
}

// CursorState is the session state after a pointer event. Position is the
// interpolated geo coordinate of the hover, absent when nothing is hovered.
type CursorState struct {
	Hover    graph.WayPosition `json:"hover"`
	Position *geo.GeoCoord     `json:"position,omitempty"`
	Path     []geo.GeoCoord    `json:"path"`
	Tags     []string          `json:"tags"`
}

// RouteResult carries a planned route with the way positions both
// endpoints resolved to. Sentinel positions mean the endpoint did not
// snap to any way; the path is empty in that case.
type RouteResult struct {
	Start graph.WayPosition `json:"start"`
	End   graph.WayPosition `json:"end"`
	Path  []geo.GeoCoord    `json:"path"`
}

type ViewportState struct {
	Scale  float64      `json:"scale"`
	Center geo.GeoCoord `json:"center"`
}
