// Package httpserver provides HTTP server and routing.
package httpserver

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gym-tracker-service/internal/app/service"
	"gym-tracker-service/internal/transport/httpserver/handler"
	"gym-tracker-service/internal/transport/httpserver/middleware"
	"gym-tracker-service/internal/validator"
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port      int
	BodyLimit int
	Debug     bool
}

// Server wraps Fiber app with handlers.
type Server struct {
	App    *fiber.App
	Logger *zap.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(
	cfg ServerConfig,
	recommendSvc *service.RecommendService,
	trackerSvc *service.TrackerService,
	syncSvc *service.FeedSyncService,
	db *gorm.DB,
	v *validator.Validator,
	logger *zap.Logger,
) *Server {
	// Template engine for the HTML pages
	engine := html.New("./web/templates", ".html")
	if cfg.Debug {
		engine.Reload(true)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "gym-tracker-service",
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler(logger),
		Views:        engine,
	})

	// Health check middleware MUST be registered BEFORE other middleware
	// for Kubernetes probes to work even during high load
	app.Use(middleware.NewHealthCheck(db))

	// Global middleware
	app.Use(requestid.New())
	app.Use(middleware.Recover(logger))
	app.Use(middleware.Logger(logger))
	app.Use(cors.New())
	app.Use(compress.New())

	// Static files
	app.Static("/static", "./web/static")

	// Create handlers
	recommendHandler := handler.NewRecommendHandler(recommendSvc, v, logger)
	logHandler := handler.NewLogHandler(trackerSvc, recommendSvc, v, logger)
	gymHandler := handler.NewGymHandler(trackerSvc, recommendSvc, v, logger)
	adminHandler := handler.NewAdminHandler(syncSvc, logger)
	pagesHandler := handler.NewPagesHandler(recommendSvc, logger)

	// Register routes
	registerRoutes(app, recommendHandler, logHandler, gymHandler, adminHandler, pagesHandler)

	return &Server{
		App:    app,
		Logger: logger,
	}
}

// registerRoutes sets up all API routes.
func registerRoutes(
	app *fiber.App,
	recommendHandler *handler.RecommendHandler,
	logHandler *handler.LogHandler,
	gymHandler *handler.GymHandler,
	adminHandler *handler.AdminHandler,
	pagesHandler *handler.PagesHandler,
) {
	// Health checks are handled by middleware (/livez, /readyz)

	// HTML pages
	app.Get("/", pagesHandler.Today)
	app.Get("/logs", pagesHandler.Logs)
	app.Get("/leaderboard", pagesHandler.Leaderboard)
	app.Get("/gyms", pagesHandler.Gyms)

	// API v1 routes
	v1 := app.Group("/api/v1")

	// Recommendations and standings
	v1.Get("/recommendations", recommendHandler.Recommend)
	v1.Get("/leaderboard", recommendHandler.Leaderboard)

	// Activity logs
	logs := v1.Group("/logs")
	logs.Get("/", logHandler.List)
	logs.Post("/", logHandler.Create)
	logs.Delete("/:id", logHandler.Delete)

	// Gyms and schedules
	gyms := v1.Group("/gyms")
	gyms.Post("/", gymHandler.Create)
	gyms.Get("/visits", gymHandler.Visits)
	v1.Post("/schedules", gymHandler.CreateSchedule)

	// Admin routes
	admin := v1.Group("/admin")
	admin.Post("/sync", adminHandler.SyncAll)
	admin.Post("/sync/:feed", adminHandler.SyncFeed)
	admin.Get("/feeds", adminHandler.GetFeeds)
}

// errorHandler returns a custom error handler that logs based on HTTP status code.
// 404s are logged at DEBUG level (expected client behavior), 4xx at WARN, 5xx at ERROR.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		// Log based on status code - 404s are common and not server errors
		switch {
		case code == fiber.StatusNotFound:
			logger.Debug("resource not found",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
			)
		case code >= 500:
			logger.Error("server error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		case code >= 400:
			logger.Warn("client error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		default:
			logger.Error("unhandled error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "UNHANDLED_ERROR",
		})
	}
}

// Start starts the HTTP server.
func (s *Server) Start(port int) error {
	s.Logger.Info("starting HTTP server", zap.Int("port", port))

	return s.App.Listen(fmt.Sprintf(":%d", port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	s.Logger.Info("shutting down HTTP server")

	return s.App.Shutdown()
}
