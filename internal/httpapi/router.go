package httpapi

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"rental-planner/internal/app"
)

// NewServer builds the echo instance with every route registered.
func NewServer(a *app.App, rdb *redis.Client, rl RateLimitConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	RegisterRoutes(e, NewHandler(a), NewTokenBucket(rl, rdb))
	return e
}

// RegisterRoutes maps the API endpoints on e. limiter guards the advice
// endpoint only.
func RegisterRoutes(e *echo.Echo, h *Handler, limiter echo.MiddlewareFunc) {
	e.GET("/health", Health)

	v1 := e.Group("/v1")
	v1.GET("/catalog", h.ListCatalog)
	v1.GET("/catalog/:id", h.GetCatalogItem)
	v1.GET("/locations", h.ListLocations)
	v1.GET("/seating/styles", h.ListStyles)
	v1.GET("/seating/plan", h.GetSeatingPlan)
	v1.POST("/advice", h.RequestAdvice, limiter)
	v1.GET("/metrics/usage", h.GetUsage)
}
