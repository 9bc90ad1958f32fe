package main

import (
	"time"

	"quirknotes/cmd/server/handlers"
	"quirknotes/cmd/server/handlers/httperr"
	notesHandlers "quirknotes/cmd/server/handlers/notes"
	"quirknotes/cmd/server/middlewares"
	"quirknotes/internal/config"
	"quirknotes/internal/logger"
	notesServices "quirknotes/internal/services/notes"

	_ "quirknotes/docs" // Load swagger docs

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

const (
	RateLimitExpiration = 1 * time.Minute
)

// deps are the outside collaborators the router wires handlers to
type deps struct {
	repo notesServices.Repository
	ping handlers.Pinger
}

// setupRouter configures and returns a Fiber app with all routes
func setupRouter(cfg config.Config, d deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler,
		Immutable:    true, // make Fiber copy all request-derived strings
	})

	hub := notesServices.NewHub(cfg.WSOutboxBuffer)

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	if cfg.RouteMetricsEnabled {
		middlewares.AttachMetrics(app, hub)
	}

	// Registered before the request logger and limiter so probes stay quiet and unthrottled
	app.Get("/healthz", handlers.Healthz(d.ping))
	app.Get("/docs/*", swagger.HandlerDefault)

	if cfg.RequestLoggingEnabled {
		app.Use(fiberlogger.New())
		logger.L().Info("request logging enabled")
	} else {
		logger.L().Info("request logging disabled")
	}

	app.Use(middlewares.BuildRateLimiter(cfg.RateLimitPerMin, RateLimitExpiration, "/healthz", "/metrics", "/ws"))

	notesSvc := notesServices.NewService(d.repo, hub, logger.L(), cfg.SanitizeHTML)
	notesH := notesHandlers.NewHandlers(notesSvc)

	app.Post("/postNote", notesH.Create)
	app.Get("/getAllNotes", notesH.List)
	app.Delete("/deleteNote/:id", notesH.Delete)
	app.Patch("/patchNote/:id", notesH.Patch)
	app.Delete("/deleteAllNotes", notesH.DeleteAll)
	app.Patch("/updateNoteColor/:id", notesH.UpdateColor)

	// WebSocket routes
	wsHandlers := notesHandlers.NewWebSocketHandlers(hub, cfg.WSMaxSessionSec)
	app.Use("/ws", notesHandlers.LogWSConnections())
	app.Get("/ws/notes/stream", wsHandlers.WSUpgrade, websocket.New(wsHandlers.WSNotesStream))

	return app
}
