package controllers

import (
	"errors"
	"strconv"

	"project/backend/config"
	"project/backend/content"
	"project/backend/gateway"
	"project/backend/models"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ChaptersController struct {
	Store   gateway.Store
	Tracker *services.ProgressTracker
	Cfg     *config.Config
}

func NewChaptersController(store gateway.Store, tracker *services.ProgressTracker, cfg *config.Config) *ChaptersController {
	return &ChaptersController{Store: store, Tracker: tracker, Cfg: cfg}
}

func (cc *ChaptersController) ListChapters(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	user, err := cc.Store.GetUser(userID)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}

	completed := models.ChapterSet{}
	currentChapter := 1
	if p, err := cc.Tracker.Get(userID); err == nil {
		completed = p.CompletedChapters
		currentChapter = p.CurrentChapter
	} else if !errors.Is(err, gateway.ErrNotFound) {
		return utils.InternalServerError(c, "Could not query database")
	}

	var result []fiber.Map
	for _, ch := range content.All() {
		result = append(result, fiber.Map{
			"number":        ch.Number,
			"title":         ch.Title,
			"summary":       ch.Summary,
			"key_learnings": ch.KeyLearnings,
			"questions":     len(ch.Questions),
			"locked":        ch.Number != content.SampleChapter && !user.HasPaid,
			"completed":     completed.Contains(ch.Number),
		})
	}

	return c.JSON(fiber.Map{
		"chapters":        result,
		"current_chapter": currentChapter,
	})
}

func (cc *ChaptersController) GetChapter(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	number, err := strconv.Atoi(c.Params("number"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid chapter number",
		})
	}

	ch, ok := content.Get(number)
	if !ok {
		return utils.NotFound(c, "Chapter not found")
	}

	if ch.Number != content.SampleChapter {
		user, err := cc.Store.GetUser(userID)
		if err != nil {
			return utils.NotFound(c, "User not found")
		}
		if !user.HasPaid {
			return utils.PaymentRequired(c, "Full course access requires payment")
		}
	}

	return c.JSON(chapterView(ch))
}

// GetSampleChapter is the free preview; no authentication required.
func (cc *ChaptersController) GetSampleChapter(c *fiber.Ctx) error {
	ch, _ := content.Get(content.SampleChapter)
	return c.JSON(chapterView(ch))
}

// chapterView exposes the full chapter body and the test questions without
// their correct answers.
func chapterView(ch content.Chapter) fiber.Map {
	var questions []fiber.Map
	for _, q := range ch.Questions {
		questions = append(questions, fiber.Map{
			"id":       q.ID,
			"question": q.Question,
			"options":  q.Options,
		})
	}

	return fiber.Map{
		"chapter": fiber.Map{
			"number":        ch.Number,
			"title":         ch.Title,
			"summary":       ch.Summary,
			"key_learnings": ch.KeyLearnings,
			"text":          ch.Text,
		},
		"questions": questions,
	}
}
