package http

import (
	"context"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	http_router "github.com/osmnav/wayplanner/pkg/http/http-router"
	"github.com/osmnav/wayplanner/pkg/http/http-router/controllers"
	http_server "github.com/osmnav/wayplanner/pkg/http/server"
)

type Server struct {
	log         *zap.Logger
	planService controllers.PlanService
}

func NewServer(log *zap.Logger, planService controllers.PlanService) *Server {
	return &Server{log: log, planService: planService}
}

// Run serves the planner API until the context is cancelled or the
// listener fails. Port and timeout come from API_PORT and API_TIMEOUT.
func (s *Server) Run(ctx context.Context) error {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "1000s")

	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(s.log)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(
			ctx, config, s.log, s.planService,
		)
	})

	return g.Wait()
}
