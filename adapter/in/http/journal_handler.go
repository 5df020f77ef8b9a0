package http

import (
	"strings"

	in "journal_server/core/port/in"
	"journal_server/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const minEntryLength = 10

// JournalHandler handles HTTP requests for journal operations
type JournalHandler struct {
	service in.JournalService
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(service in.JournalService) *JournalHandler {
	return &JournalHandler{service: service}
}

// Register registers journal routes
func (h *JournalHandler) Register(router fiber.Router) {
	journal := router.Group("/journal")

	journal.Post("/", h.Create)
	journal.Get("/", h.List)
	journal.Post("/analyze", h.Analyze)
	journal.Get("/:id", h.Get)
	journal.Delete("/:id", h.Delete)
}

// RegisterAnalyzeOnly registers just the no-persistence analyze route,
// for deployments running without a database.
func (h *JournalHandler) RegisterAnalyzeOnly(router fiber.Router) {
	router.Group("/journal").Post("/analyze", h.Analyze)
}

// Create analyzes and persists a journal entry
// @Summary Create a journal entry with emotional analysis
// @Tags Journal
// @Accept json
// @Produce json
// @Param request body in.CreateEntryRequest true "Entry data"
// @Success 201 {object} domain.JournalEntry
// @Router /api/v1/journal [post]
func (h *JournalHandler) Create(c *fiber.Ctx) error {
	var req in.CreateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.UserID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "user_id is required"})
	}
	if len(strings.TrimSpace(req.Text)) < minEntryLength {
		return c.Status(400).JSON(fiber.Map{"error": "text must be at least 10 characters"})
	}

	entry, err := h.service.CreateEntry(c.Context(), &req)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(entry)
}

// List lists journal entries for a user
// @Summary List journal entries
// @Tags Journal
// @Produce json
// @Param user_id query string true "User ID"
// @Param limit query int false "Limit (default 50, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} in.EntryListResponse
// @Router /api/v1/journal [get]
func (h *JournalHandler) List(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "user_id is required"})
	}

	page := response.GetPagination(c, 50, 100)

	resp, err := h.service.ListEntries(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"entries": resp.Entries,
		"total":   resp.Total,
		"limit":   page.Limit,
		"offset":  page.Offset,
	})
}

// Get retrieves a journal entry by ID
// @Summary Get a journal entry by ID
// @Tags Journal
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} domain.JournalEntry
// @Router /api/v1/journal/{id} [get]
func (h *JournalHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid entry id"})
	}

	entry, err := h.service.GetEntry(c.Context(), id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "journal entry not found"})
	}

	return c.JSON(entry)
}

// Delete removes a journal entry
// @Summary Delete a journal entry
// @Tags Journal
// @Param id path string true "Entry ID"
// @Success 204
// @Router /api/v1/journal/{id} [delete]
func (h *JournalHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid entry id"})
	}

	if err := h.service.DeleteEntry(c.Context(), id); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "journal entry not found"})
	}

	return c.SendStatus(204)
}

// Analyze runs the pipeline without persisting anything
// @Summary Analyze text without saving
// @Tags Journal
// @Accept json
// @Produce json
// @Param request body in.AnalyzeRequest true "Text to analyze"
// @Success 200 {object} in.AnalyzeResponse
// @Router /api/v1/journal/analyze [post]
func (h *JournalHandler) Analyze(c *fiber.Ctx) error {
	var req in.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid request body"})
	}

	if len(strings.TrimSpace(req.Text)) < minEntryLength {
		return c.Status(400).JSON(fiber.Map{"error": "text must be at least 10 characters"})
	}

	resp, err := h.service.Analyze(c.Context(), &req)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(resp)
}
