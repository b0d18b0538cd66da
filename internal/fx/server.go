package fx

import (
	"context"
	"errors"
	"net"
	"net/http"

	"Seedfund/config"
	docs "Seedfund/docs"
	"Seedfund/internal/logger"
	"Seedfund/internal/middleware"
	"Seedfund/internal/routes"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
		startServer,
	),
)

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	return router
}

func setupRoutes(
	router *gin.Engine,
	handler *routes.Handler,
	limiter *middleware.RateLimiter,
) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Register(router.Group("/api"), handler, limiter)
	router.NoRoute(handler.NotFound)
}

func startServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, router *gin.Engine) {
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			logger.Info().
				Str("address", server.Addr).
				Str("environment", cfg.App.Environment).
				Msg("server starting")

			go func() {
				if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error().Err(err).Msg("server stopped unexpectedly")
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("server stopping")
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
