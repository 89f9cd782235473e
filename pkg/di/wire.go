//go:build wireinject

//go:generate wire
package di

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/osmnav/wayplanner/pkg/di/config"
	logger_di "github.com/osmnav/wayplanner/pkg/di/logger"
	mapdata_di "github.com/osmnav/wayplanner/pkg/di/mapdata"
	session_di "github.com/osmnav/wayplanner/pkg/di/session"
	plannerHttp "github.com/osmnav/wayplanner/pkg/http"
	"github.com/osmnav/wayplanner/pkg/http/http-router/controllers"
	"github.com/osmnav/wayplanner/pkg/http/usecases"
)

var defaultSet = wire.NewSet(
	config.New,
	logger_di.New,
	mapdata_di.New,
	session_di.New,
)

var plannerSet = wire.NewSet(
	defaultSet,
	NewPlannerService,
	plannerHttp.NewServer,
)

func NewPlannerService(log *zap.Logger, session usecases.MapSession) controllers.PlanService {
	return usecases.New(log, session)
}

func InitializePlannerServer() (*plannerHttp.Server, func(), error) {
	panic(wire.Build(plannerSet))
}
