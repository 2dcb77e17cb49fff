// Package router assembles the gin engine: middleware chain and /api routes.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/jexlaindia/app/internal/handler"
	"github.com/jexlaindia/app/internal/middleware"
	"go.uber.org/zap"
)

// Dependencies holds everything SetupRouter wires into the engine.
type Dependencies struct {
	CORSOrigins []string
	Handler     *handler.Handler
	Logger      *zap.SugaredLogger
}

// SetupRouter returns the engine serving every endpoint under /api.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	// CORS is innermost so rejected origins still get a request id and a log line
	r.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.RequestLogger(deps.Logger),
		middleware.ErrorHandler(deps.Logger),
		middleware.CORSMiddleware(deps.CORSOrigins),
	)

	h := deps.Handler
	api := r.Group("/api")
	{
		api.GET("/", h.Root)
		api.GET("/health", h.Health)

		api.POST("/status", h.CreateStatusCheck)
		api.GET("/status", h.ListStatusChecks)

		api.POST("/contact", h.CreateContactMessage)
		api.GET("/contact", h.ListContactMessages)
	}

	return r
}
