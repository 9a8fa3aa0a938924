package controllers

import (
	"errors"

	"project/backend/config"
	"project/backend/content"
	"project/backend/gateway"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Tracker *services.ProgressTracker
	Cfg     *config.Config
}

func NewProgressController(tracker *services.ProgressTracker, cfg *config.Config) *ProgressController {
	return &ProgressController{Tracker: tracker, Cfg: cfg}
}

// GetProgress godoc
// @Summary Get user progress
// @Description Returns the user's chapter pointer and completed chapters
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	p, err := pc.Tracker.Get(userID)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return utils.NotFound(c, "No progress recorded yet")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{
		"current_chapter":    p.CurrentChapter,
		"completed_chapters": p.CompletedChapters,
		"completed_count":    len(p.CompletedChapters),
		"total_chapters":     content.TotalChapters,
		"last_accessed":      p.LastAccessed,
	})
}
