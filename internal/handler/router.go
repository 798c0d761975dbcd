package handler

import (
	"log/slog"
	"net/http"

	"github.com/N05TR4/gdt-sistema/internal/middleware"
	"github.com/N05TR4/gdt-sistema/internal/platform/clock"
	"github.com/N05TR4/gdt-sistema/internal/service"
	"github.com/N05TR4/gdt-sistema/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterDeps are the collaborators mounted on the HTTP router. Metrics and
// Hub are optional.
type RouterDeps struct {
	Declarations service.DeclarationService
	Hub          *websocket.Hub
	Metrics      http.Handler
	Clock        clock.Clock
	Log          *slog.Logger
	CORSOrigins  []string
	Swagger      bool
}

func NewRouter(deps RouterDeps) *gin.Engine {
	log := deps.Log
	if log == nil {
		log = slog.Default()
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(log))

	// CORS configuration
	if len(deps.CORSOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = deps.CORSOrigins
		corsConfig.AllowCredentials = true
		corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", middleware.RequestIDHeader}
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
		corsConfig.ExposeHeaders = []string{"Content-Disposition", middleware.RequestIDHeader}
		router.Use(cors.New(corsConfig))
	}

	if deps.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics))
	}
	if deps.Hub != nil {
		router.GET("/ws", func(c *gin.Context) {
			websocket.ServeWs(deps.Hub, c)
		})
	}

	NewHealthHandler(deps.Clock).RegisterRoutes(router.Group(""))
	NewDeclarationHandler(deps.Declarations, deps.Clock, log).RegisterRoutes(router.Group(""))

	return router
}
