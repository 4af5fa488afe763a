package main

import (
	"strings"
	"sync"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"diaryapi/docs"
	handlers "diaryapi/internal/http/handler"
	"diaryapi/internal/http/middleware"
)

// swaggerMu guards docs.SwaggerInfo, which is written and rendered per request.
var swaggerMu sync.Mutex

// newApp assembles the Fiber application: middleware chain, API routes,
// /metrics and the Swagger UI. db may be nil for the in-memory store.
func newApp(log zerolog.Logger, reg *prometheus.Registry, db handlers.Pinger, svc handlers.Services) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:      "diaryapi",
		ErrorHandler: handlers.ErrorHandler(),
	})

	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))
	app.Use(middleware.Logger(log))
	app.Use(prom.Handler())

	handlers.RegisterRoutes(app, db, svc)

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		swaggerMu.Lock()
		defer swaggerMu.Unlock()
		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	return app, nil
}
