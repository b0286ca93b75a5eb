package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/quickbill/orderview-api/internal/config"
	"github.com/quickbill/orderview-api/internal/presentation/http/handler"
	"github.com/quickbill/orderview-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	OrderView *handler.OrderViewHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware. InvoiceCORS also answers OPTIONS preflights, so
	// no route below ever sees one.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.InvoiceCORS())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// Order view: identifier in the path, or via ?id= when the path stops
	// at the route name itself
	router.GET("/"+handler.RouteName, h.OrderView.Get)
	router.GET("/"+handler.RouteName+"/:id", h.OrderView.Get)

	return router
}
