package http

import (
	"io"
	"path/filepath"
	"strings"

	in "journal_server/core/port/in"
	"journal_server/pkg/response"

	"github.com/gofiber/fiber/v2"
)

var supportedAudioFormats = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".m4a":  true,
	".ogg":  true,
	".flac": true,
}

// AudioHandler handles HTTP requests for audio journal entries
type AudioHandler struct {
	service in.AudioService
}

// NewAudioHandler creates a new AudioHandler
func NewAudioHandler(service in.AudioService) *AudioHandler {
	return &AudioHandler{service: service}
}

// Register registers audio routes
func (h *AudioHandler) Register(router fiber.Router) {
	audio := router.Group("/audio")

	audio.Post("/", h.Upload)
	audio.Get("/", h.List)
}

// Upload accepts an audio journal entry
// @Summary Upload an audio journal entry
// @Tags Audio
// @Accept multipart/form-data
// @Produce json
// @Param user_id query string true "User ID"
// @Param file formData file true "Audio file (MP3, WAV, M4A, OGG, FLAC)"
// @Success 201 {object} domain.AudioEntry
// @Router /api/v1/audio [post]
func (h *AudioHandler) Upload(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "user_id is required"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "file is required"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !supportedAudioFormats[ext] {
		return c.Status(400).JSON(fiber.Map{"error": "unsupported audio format. Supported: MP3, WAV, M4A, OGG, FLAC"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to read uploaded file"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to read uploaded file"})
	}

	entry, err := h.service.CreateAudioEntry(c.Context(), &in.CreateAudioRequest{
		UserID:   userID,
		FileName: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(entry)
}

// List lists audio entries for a user
// @Summary List audio entries
// @Tags Audio
// @Produce json
// @Param user_id query string true "User ID"
// @Param limit query int false "Limit (default 50, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} in.AudioListResponse
// @Router /api/v1/audio [get]
func (h *AudioHandler) List(c *fiber.Ctx) error {
	userID := c.Query("user_id")
	if userID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "user_id is required"})
	}

	page := response.GetPagination(c, 50, 100)

	resp, err := h.service.ListAudioEntries(c.Context(), userID, page.Limit, page.Offset)
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
