package bootstrap

import (
	"strings"

	"journal_server/adapter/in/http"
	"journal_server/config"
	"journal_server/infra/middleware"
	"journal_server/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// NewAPI builds the Fiber app with the full middleware stack and
// registers every route the wired dependencies support.
func NewAPI(cfg *config.Config) (*fiber.App, func(), error) {
	logLevel := logger.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = logger.LevelDebug
	}
	logger.Init(logger.Config{
		Level:   logLevel,
		Service: "journal-api",
	})

	deps, cleanup, err := NewDependencies(cfg)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize dependencies")
		return nil, nil, err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.ErrorHandler(),
		DisableStartupMessage: cfg.IsProduction(),
		ReadBufferSize:        16384,
		WriteBufferSize:       16384,

		// go-json over encoding/json
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,

		BodyLimit: (cfg.MaxUploadMB + 1) * 1024 * 1024,
	})

	// Global middleware stack (order matters)
	app.Use(middleware.Recover())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	allowOrigins := strings.Join(cfg.AllowedOrigins, ",")
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID",
	}))

	// Health endpoints
	healthHandler := http.NewHealthHandler(deps.DB, deps.Analyzer)
	healthHandler.Register(app)

	api := app.Group("/api/v1")

	journalHandler := http.NewJournalHandler(deps.JournalService)
	if deps.DB != nil {
		journalHandler.Register(api)
	} else {
		journalHandler.RegisterAnalyzeOnly(api)
		logger.Warn("journal persistence routes disabled: no database configured")
	}

	if deps.AudioService != nil {
		audioHandler := http.NewAudioHandler(deps.AudioService)
		audioHandler.Register(api)
	}

	wellnessHandler := http.NewWellnessHandler(deps.WellnessService)
	wellnessHandler.Register(api)

	return app, cleanup, nil
}
