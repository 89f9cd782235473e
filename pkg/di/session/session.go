package session_di

import (
	"go.uber.org/zap"

	"github.com/osmnav/wayplanner/pkg/app"
	"github.com/osmnav/wayplanner/pkg/graph"
	"github.com/osmnav/wayplanner/pkg/http/usecases"
	"github.com/osmnav/wayplanner/pkg/raster"
)

// New builds the interactive map session: the segment index, the software
// rasterizer over it, and the orchestrator wired to both.
func New(log *zap.Logger, data *graph.Data) usecases.MapSession {
	index := raster.NewWayIndex(data)
	rasterizer := raster.New(index)

	log.Info("built way index", zap.Int("indexed_ways", index.Size()))

	return app.New(log, data, rasterizer)
}
