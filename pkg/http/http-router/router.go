package http_router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/osmnav/wayplanner/pkg/http/http-router/controllers"
	helper "github.com/osmnav/wayplanner/pkg/http/http-router/router-helper"
	http_server "github.com/osmnav/wayplanner/pkg/http/server"
)

type API struct {
	log *zap.Logger
}

func NewAPI(log *zap.Logger) *API {
	return &API{log: log}
}

func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	log *zap.Logger,

	planService controllers.PlanService,
) error {
	log.Info("Run httprouter API")

	router := httprouter.New()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	group := helper.NewRouteGroup(router, "/api")

	plannerRoutes := controllers.New(planService, log)
	plannerRoutes.Routes(group)

	mainMwChain := alice.New(corsHandler.Handler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), Logger(log)).Then(router)

	srv := http_server.New(ctx, mainMwChain, config)
	log.Info(fmt.Sprintf("API run on port %d", config.Port))

	err := srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
