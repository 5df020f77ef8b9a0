package http

import (
	"context"
	"time"

	"journal_server/core/nlp"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
)

// HealthHandler reports process and model availability
type HealthHandler struct {
	db       *sqlx.DB
	analyzer *nlp.Analyzer
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *sqlx.DB, analyzer *nlp.Analyzer) *HealthHandler {
	return &HealthHandler{
		db:       db,
		analyzer: analyzer,
	}
}

// Register registers health routes
func (h *HealthHandler) Register(app *fiber.App) {
	app.Get("/healthz", h.Healthz)
	app.Get("/api/health", h.Health)
}

// Healthz is the liveness probe
func (h *HealthHandler) Healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Health reports database connectivity and per-tier classifier
// availability
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	database := "not configured"
	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			database = "unhealthy: " + err.Error()
		} else {
			database = "connected"
		}
	}

	return c.JSON(fiber.Map{
		"status":     "healthy",
		"version":    "1.0.0",
		"database":   database,
		"nlp_models": h.analyzer.Health(),
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}
