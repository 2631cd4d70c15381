package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/kakemizuh/gameeconomy/internal/infrastructure/auth"
	"github.com/kakemizuh/gameeconomy/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/kakemizuh/gameeconomy/internal/http/handlers"
	"github.com/kakemizuh/gameeconomy/internal/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router         *gin.Engine
	jwtService     auth.JWTService
	playerHandler  *handlers.PlayerHandler
	itemHandler    *handlers.ItemHandler
	economyHandler *handlers.EconomyHandler
	errorHandler   *middleware.ErrorHandler
	port           string
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	playerHandler *handlers.PlayerHandler,
	itemHandler *handlers.ItemHandler,
	economyHandler *handlers.EconomyHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	server := &Server{
		router:         router,
		jwtService:     jwtService,
		playerHandler:  playerHandler,
		itemHandler:    itemHandler,
		economyHandler: economyHandler,
		errorHandler:   errorHandler,
		port:           port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", s.playerHandler.Login)
		}

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			playerRoutes := protected.Group("/players")
			{
				playerRoutes.GET("", s.playerHandler.GetAllPlayers)
				playerRoutes.POST("", s.playerHandler.CreatePlayer)
				playerRoutes.GET("/:id", s.playerHandler.GetPlayer)
				playerRoutes.PUT("/:id", s.playerHandler.UpdatePlayer)
				playerRoutes.DELETE("/:id", s.playerHandler.DeletePlayer)

				playerRoutes.GET("/:id/items", s.itemHandler.GetPlayerItems)
				playerRoutes.POST("/:id/items/grant", s.economyHandler.GrantItem)
				playerRoutes.POST("/:id/items/use", s.economyHandler.UseItem)
				playerRoutes.POST("/:id/gacha", s.economyHandler.DrawGacha)
			}

			itemRoutes := protected.Group("/items")
			{
				itemRoutes.GET("", s.itemHandler.GetAllItems)
				itemRoutes.GET("/:id", s.itemHandler.GetItem)
			}
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}

// Handler returns the underlying handler, for serving through a managed
// http.Server
func (s *Server) Handler() http.Handler {
	return s.router
}
