package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/attivita/internal/server/http/handlers"
	"github.com/polkiloo/attivita/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PlannerFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	activityHandler := handlers.NewActivityHandler(facade)

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	attivita := api.Group("/attivita")
	attivita.Use(middleware.AuthRequired(facade))
	attivita.GET("/byUser", activityHandler.ListByUser)
	attivita.POST("", activityHandler.Create)
	attivita.PUT("/:id", activityHandler.Update)
	attivita.DELETE("/:id", activityHandler.Delete)

	return engine
}
