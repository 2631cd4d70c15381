package app

import (
	"context"
	nethttp "net/http"

	"github.com/kakemizuh/gameeconomy/internal/http"
	"github.com/kakemizuh/gameeconomy/internal/http/handlers"
	"github.com/kakemizuh/gameeconomy/internal/http/middleware"
	"github.com/kakemizuh/gameeconomy/internal/infrastructure/auth"
	"github.com/kakemizuh/gameeconomy/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	playerHandler *handlers.PlayerHandler,
	itemHandler *handlers.ItemHandler,
	economyHandler *handlers.EconomyHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(jwtService, playerHandler, itemHandler, economyHandler, errorHandler, log, port)
}

// RunHTTPServer binds the HTTP server to the fx lifecycle
func (a *application) RunHTTPServer(lc fx.Lifecycle, server *http.Server, log *logger.Logger) {
	httpServer := &nethttp.Server{
		Addr:    a.config.GetServerAddress(),
		Handler: server.Handler(),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("HTTP server starting", zap.String("addr", httpServer.Addr))
			go func() {
				if err := httpServer.ListenAndServe(); err != nil && err != nethttp.ErrServerClosed {
					log.Error("HTTP server stopped unexpectedly", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("HTTP server shutting down")
			return httpServer.Shutdown(ctx)
		},
	})
}
