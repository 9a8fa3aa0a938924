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

type TestsController struct {
	Store    gateway.Store
	Recorder *services.TestRecorder
	Cfg      *config.Config
}

func NewTestsController(store gateway.Store, recorder *services.TestRecorder, cfg *config.Config) *TestsController {
	return &TestsController{Store: store, Recorder: recorder, Cfg: cfg}
}

func (tc *TestsController) SubmitTest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	number, err := strconv.Atoi(c.Params("number"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid chapter number",
		})
	}

	type AnswerInput struct {
		QuestionID int `json:"question_id"`
		Answer     int `json:"answer"`
	}
	var input struct {
		Answers []AnswerInput `json:"answers"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	ch, ok := content.Get(number)
	if !ok {
		return utils.NotFound(c, "Chapter not found")
	}

	if ch.Number != content.SampleChapter {
		user, err := tc.Store.GetUser(userID)
		if err != nil {
			return utils.NotFound(c, "User not found")
		}
		if !user.HasPaid {
			return utils.PaymentRequired(c, "Full course access requires payment")
		}
	}

	answers := models.AnswerMap{}
	for _, a := range input.Answers {
		answers[a.QuestionID] = a.Answer
	}

	score := services.Grade(ch, answers)
	result, err := tc.Recorder.Submit(userID, number, score, answers)
	if err != nil {
		return utils.InternalServerError(c, "Could not save test result")
	}

	return c.JSON(fiber.Map{
		"message": "Test submitted",
		"result": fiber.Map{
			"chapter_number": result.ChapterNumber,
			"score":          result.Score,
			"passed":         result.Passed,
			"completed_at":   result.CompletedAt,
		},
	})
}

func (tc *TestsController) GetUserTests(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	results, err := tc.Recorder.Results(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var out []fiber.Map
	for _, r := range results {
		out = append(out, fiber.Map{
			"chapter_number": r.ChapterNumber,
			"score":          r.Score,
			"passed":         r.Passed,
			"completed_at":   r.CompletedAt,
		})
	}

	return c.JSON(fiber.Map{
		"results": out,
	})
}

// GetTestResult returns the recorded attempt for one chapter together with
// the question bank, correct answers included, for the review screen.
func (tc *TestsController) GetTestResult(c *fiber.Ctx) error {
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

	result, err := tc.Recorder.Result(userID, number)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return utils.NotFound(c, "Test not completed")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var questions []fiber.Map
	for _, q := range ch.Questions {
		questions = append(questions, fiber.Map{
			"id":             q.ID,
			"question":       q.Question,
			"options":        q.Options,
			"correct_answer": q.CorrectAnswer,
			"explanation":    q.Explanation,
			"answered":       result.Answers[q.ID],
		})
	}

	return c.JSON(fiber.Map{
		"chapter": fiber.Map{
			"number": ch.Number,
			"title":  ch.Title,
		},
		"result": fiber.Map{
			"score":        result.Score,
			"passed":       result.Passed,
			"completed_at": result.CompletedAt,
		},
		"questions": questions,
	})
}
