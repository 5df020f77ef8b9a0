package http

import (
	in "journal_server/core/port/in"

	"github.com/gofiber/fiber/v2"
)

// WellnessHandler serves mood-keyed supportive content
type WellnessHandler struct {
	service in.WellnessService
}

// NewWellnessHandler creates a new WellnessHandler
func NewWellnessHandler(service in.WellnessService) *WellnessHandler {
	return &WellnessHandler{service: service}
}

// Register registers wellness routes
func (h *WellnessHandler) Register(router fiber.Router) {
	wellness := router.Group("/wellness")

	wellness.Get("/quote", h.Quote)
	wellness.Get("/books", h.Books)
	wellness.Get("/story", h.Story)
	wellness.Get("/activity", h.Activity)
	wellness.Get("/crisis", h.Crisis)
}

// Quote returns a random quote for the emotion
// @Summary Get a motivational quote
// @Tags Wellness
// @Produce json
// @Param emotion query string false "Emotion (default neutral)"
// @Success 200 {object} domain.Quote
// @Router /api/v1/wellness/quote [get]
func (h *WellnessHandler) Quote(c *fiber.Ctx) error {
	emotion := c.Query("emotion", "neutral")
	return c.JSON(h.service.Quote(emotion))
}

// Books returns reading recommendations for the emotion
// @Summary Get book recommendations
// @Tags Wellness
// @Produce json
// @Param emotion query string false "Emotion (default neutral)"
// @Param limit query int false "Limit (default 3)"
// @Success 200 {array} domain.Book
// @Router /api/v1/wellness/books [get]
func (h *WellnessHandler) Books(c *fiber.Ctx) error {
	emotion := c.Query("emotion", "neutral")
	limit := c.QueryInt("limit", 3)
	return c.JSON(h.service.Books(emotion, limit))
}

// Story returns an inspirational story for the emotion
// @Summary Get an inspirational story
// @Tags Wellness
// @Produce json
// @Param emotion query string false "Emotion"
// @Success 200 {object} domain.Story
// @Router /api/v1/wellness/story [get]
func (h *WellnessHandler) Story(c *fiber.Ctx) error {
	emotion := c.Query("emotion", "neutral")
	story := h.service.Story(emotion)
	if story == nil {
		return c.Status(404).JSON(fiber.Map{"error": "no story for this emotion"})
	}
	return c.JSON(story)
}

// Activity returns a guided wellness exercise
// @Summary Get a guided activity
// @Tags Wellness
// @Produce json
// @Param kind query string false "Activity kind (default grounding_5_4_3_2_1)"
// @Success 200 {object} domain.Activity
// @Router /api/v1/wellness/activity [get]
func (h *WellnessHandler) Activity(c *fiber.Ctx) error {
	kind := c.Query("kind")
	return c.JSON(h.service.Activity(kind))
}

// Crisis returns the crisis resource directory
// @Summary Get crisis resources
// @Tags Wellness
// @Produce json
// @Success 200 {object} domain.CrisisDirectory
// @Router /api/v1/wellness/crisis [get]
func (h *WellnessHandler) Crisis(c *fiber.Ctx) error {
	return c.JSON(h.service.CrisisResources())
}
