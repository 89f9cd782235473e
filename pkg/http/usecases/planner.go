package usecases

import (
	"sync"

	"go.uber.org/zap"

	"github.com/osmnav/wayplanner/pkg/app"
	"github.com/osmnav/wayplanner/pkg/geo"
	"github.com/osmnav/wayplanner/pkg/graph"
)

// PlannerService exposes the map session to the HTTP layer. The session
// itself is single-owner state, so every operation holds the mutex for its
// full duration; events are handled to completion in arrival order.
type PlannerService struct {
	log     *zap.Logger
	session MapSession
	mu      sync.Mutex
}

func New(log *zap.Logger, session MapSession) *PlannerService {
	return &PlannerService{log: log, session: session}
}

// MoveCursor runs the pointer-move pass. A nil cursor means the pointer
// left the view.
func (s *PlannerService) MoveCursor(cursor *geo.PixelCoord, viewportSize geo.Size) CursorState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.UpdateCursorPos(cursor, viewportSize)

	state := CursorState{
		Hover: s.session.Hover(),
		Path:  s.session.PlannedPath(),
		Tags:  s.session.SelectedTags(),
	}
	if position, ok := s.session.SelectedPosition(); ok {
		state.Position = &position
	}
	return state
}

func (s *PlannerService) Zoom(factor float64, anchor geo.PixelCoord, viewportSize geo.Size) ViewportState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.Zoom(factor, anchor, viewportSize)
	scale, center := s.session.Viewport()
	return ViewportState{Scale: scale, Center: center}
}

func (s *PlannerService) Pan(offset geo.PixelOffset, viewportSize geo.Size) ViewportState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.MoveMap(offset, viewportSize)
	scale, center := s.session.Viewport()
	return ViewportState{Scale: scale, Center: center}
}

func (s *PlannerService) StartPath() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.StartPathPlan()
}

func (s *PlannerService) ClearPath() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.ClearPathPlan()
}

func (s *PlannerService) SetDebug(enable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SetDebugMode(enable)
}

// PlanRoute snaps both coordinates to their nearest ways and plans a route
// between them. An unroutable request degrades to an empty path, never an
// error.
func (s *PlannerService) PlanRoute(start, end geo.GeoCoord, debug bool) RouteResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	startPos := s.session.FindNearestWay(start)
	endPos := s.session.FindNearestWay(end)

	path := s.session.PlanBetween(startPos, endPos, debug)
	if len(path) == 0 {
		s.log.Debug("no route found",
			zap.Int32("start_way", startPos.WayID),
			zap.Int32("end_way", endPos.WayID))
	}

	return RouteResult{Start: startPos, End: endPos, Path: path}
}

func (s *PlannerService) NearestWay(cursor geo.GeoCoord) graph.WayPosition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.FindNearestWay(cursor)
}

func (s *PlannerService) SelectedTags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.SelectedTags()
}

func (s *PlannerService) SetHighlights(highlights []app.Highlight) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.SetHighlightList(highlights)
}
