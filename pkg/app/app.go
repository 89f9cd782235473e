// Package app wires pointer, zoom and pan events through the viewport
// transform, the spatial picker and the path planner. A single App owns
// all mutable session state; embedders running it from multiple goroutines
// must serialize access themselves.
package app

import (
	"github.com/osmnav/wayplanner/pkg/geo"
	"github.com/osmnav/wayplanner/pkg/graph"
	"github.com/osmnav/wayplanner/pkg/picker"
	"github.com/osmnav/wayplanner/pkg/planner"
	"github.com/osmnav/wayplanner/pkg/viewport"

	"go.uber.org/zap"
)

const defaultScale = 10.0

type App struct {
	log *zap.Logger

	data    *graph.Data
	planner *planner.PathPlanner
	picker  *picker.SpatialPicker
	view    *viewport.Transform

	pathStart   graph.WayPosition
	hover       graph.WayPosition
	plannedPath []geo.GeoCoord
	debug       bool

	highlights []compiledHighlight

	// Last pointer state, replayed after zoom/pan so hover and path stay
	// consistent with the new view.
	lastCursor *geo.PixelCoord
	lastSize   geo.Size
}

func New(log *zap.Logger, data *graph.Data, rasterizer picker.Rasterizer) *App {
	g := graph.NewGeoGraph(data)

	min, max := data.Bounds()
	center := geo.GeoCoord{
		Long: (min.Long + max.Long) / 2.0,
		Lat:  (min.Lat + max.Lat) / 2.0,
	}

	log.Info("initialized map session",
		zap.Int("nodes", len(data.Nodes)),
		zap.Int("ways", len(data.Ways)),
		zap.Float64("center_long", center.Long),
		zap.Float64("center_lat", center.Lat))

	return &App{
		log:       log,
		data:      data,
		planner:   planner.New(data, g),
		picker:    picker.New(data, rasterizer),
		view:      viewport.New(defaultScale, center),
		pathStart: graph.NoWayPosition(),
		hover:     graph.NoWayPosition(),
	}
}

// UpdateCursorPos handles a pointer move. A nil cursor means the pointer
// left the view: hover resets to the sentinel and the planned path clears.
// Otherwise the pixel is resolved to the nearest way, and when a path start
// exists the route to the hovered position is recomputed from scratch.
func (a *App) UpdateCursorPos(cursor *geo.PixelCoord, viewportSize geo.Size) {
	a.lastCursor = cursor
	a.lastSize = viewportSize

	a.updateSelectedWay(cursor, viewportSize)

	if a.pathStart.Valid() && a.hover.Valid() {
		a.plannedPath = a.planner.PlanPath(
			a.data.NodeAt(a.pathStart),
			a.data.NodeAt(a.hover),
			a.debug,
		)
	} else {
		a.plannedPath = nil
	}
}

func (a *App) updateSelectedWay(cursor *geo.PixelCoord, viewportSize geo.Size) {
	if cursor == nil {
		a.hover = graph.NoWayPosition()
		return
	}

	cursorCoord := a.view.PixelToGeo(*cursor, viewportSize)
	a.hover = a.picker.FindNearestWay(cursorCoord, a.view.Scale)
}

// Zoom changes the zoom level around the given pixel. 2.0 halves the
// longitude span of the viewport, 0.5 doubles it.
func (a *App) Zoom(amount float64, zoomCenter geo.PixelCoord, viewportSize geo.Size) {
	a.view.Zoom(amount, zoomCenter, viewportSize)
	a.refreshCursor()
}

// MoveMap pans the viewport by a pixel offset.
func (a *App) MoveMap(offset geo.PixelOffset, viewportSize geo.Size) {
	a.view.Pan(offset, viewportSize)
	a.refreshCursor()
}

func (a *App) refreshCursor() {
	if a.lastCursor != nil {
		a.UpdateCursorPos(a.lastCursor, a.lastSize)
	}
}

// StartPathPlan snapshots the current hover as the route start.
func (a *App) StartPathPlan() {
	a.pathStart = a.hover
}

func (a *App) ClearPathPlan() {
	a.pathStart = graph.NoWayPosition()
}

func (a *App) SetDebugMode(enable bool) {
	a.debug = enable
}

func (a *App) PixelToGeo(pixel geo.PixelCoord, viewportSize geo.Size) geo.GeoCoord {
	return a.view.PixelToGeo(pixel, viewportSize)
}

func (a *App) GeoToPixel(coord geo.GeoCoord, viewportSize geo.Size) geo.PixelCoord {
	return a.view.GeoToPixel(coord, viewportSize)
}

// SelectedTags returns the tags of the way under the cursor, empty when
// nothing is hovered.
func (a *App) SelectedTags() []string {
	if !a.hover.Valid() {
		return []string{}
	}
	return a.data.Ways[a.hover.WayID].Tags
}

// SelectedPosition is the interpolated geo coordinate of the hover.
func (a *App) SelectedPosition() (geo.GeoCoord, bool) {
	return a.data.PositionCoord(a.hover)
}

func (a *App) Hover() graph.WayPosition {
	return a.hover
}

func (a *App) PathStart() graph.WayPosition {
	return a.pathStart
}

func (a *App) PlannedPath() []geo.GeoCoord {
	return a.plannedPath
}

func (a *App) Viewport() (float64, geo.GeoCoord) {
	return a.view.Scale, a.view.Center
}

// PlanBetween plans a route between two way positions directly, bypassing
// the pointer state. Used by the HTTP query surface.
func (a *App) PlanBetween(start, end graph.WayPosition, debug bool) []geo.GeoCoord {
	if !start.Valid() || !end.Valid() {
		return []geo.GeoCoord{}
	}
	return a.planner.PlanPath(a.data.NodeAt(start), a.data.NodeAt(end), debug)
}

// FindNearestWay resolves the way nearest to a geo coordinate at the
// current view scale.
func (a *App) FindNearestWay(cursor geo.GeoCoord) graph.WayPosition {
	return a.picker.FindNearestWay(cursor, a.view.Scale)
}
