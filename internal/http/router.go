package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "marsad/backend/docs"
	"marsad/backend/internal/handler"
)

type RouterConfig struct {
	RatePerSecond float64
	RateBurst     int
}

func NewRouter(
	feedHandler *handler.FeedHandler,
	testimonyHandler *handler.TestimonyHandler,
	organizationHandler *handler.OrganizationHandler,
	cfg RouterConfig,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	api.Use(RateLimitMiddleware(cfg.RatePerSecond, cfg.RateBurst))
	feedHandler.RegisterRoutes(api)
	testimonyHandler.RegisterRoutes(api)
	organizationHandler.RegisterRoutes(api)

	return e
}
