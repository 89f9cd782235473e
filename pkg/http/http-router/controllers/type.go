package controllers

import (
	"github.com/osmnav/wayplanner/pkg/app"
	"github.com/osmnav/wayplanner/pkg/geo"
	"github.com/osmnav/wayplanner/pkg/graph"
	"github.com/osmnav/wayplanner/pkg/http/usecases"
)

type PlanService interface {
	MoveCursor(cursor *geo.PixelCoord, viewportSize geo.Size) usecases.CursorState
	Zoom(factor float64, anchor geo.PixelCoord, viewportSize geo.Size) usecases.ViewportState
	Pan(offset geo.PixelOffset, viewportSize geo.Size) usecases.ViewportState
	StartPath()
	ClearPath()
	SetDebug(enable bool)
	PlanRoute(start, end geo.GeoCoord, debug bool) usecases.RouteResult
	NearestWay(cursor geo.GeoCoord) graph.WayPosition
	SelectedTags() []string
	SetHighlights(highlights []app.Highlight) error
}
