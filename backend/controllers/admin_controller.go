package controllers

import (
	"strconv"
	"time"

	"project/backend/config"
	"project/backend/gateway"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminController covers the operator workflow: payment is confirmed by a
// human reading UPI notifications, then marked here by hand.
type AdminController struct {
	Store   gateway.Store
	Tracker *services.ProgressTracker
	Cfg     *config.Config
}

func NewAdminController(store gateway.Store, tracker *services.ProgressTracker, cfg *config.Config) *AdminController {
	return &AdminController{Store: store, Tracker: tracker, Cfg: cfg}
}

func (ac *AdminController) ListUsers(c *fiber.Ctx) error {
	users, err := ac.Store.ListUsers()
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	var result []fiber.Map
	for _, user := range users {
		result = append(result, fiber.Map{
			"id":                user.ID,
			"phone":             user.PhoneNumber,
			"full_name":         user.FullName,
			"has_paid":          user.HasPaid,
			"payment_date":      user.PaymentDate,
			"wants_certificate": user.WantsCertificate,
			"registered_at":     user.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"users": result,
	})
}

// MarkPaymentComplete flips the payment flag exactly once. A second call
// for an already-paid user changes nothing and reports the existing state.
func (ac *AdminController) MarkPaymentComplete(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	user, err := ac.Store.GetUser(uint(userID))
	if err != nil {
		return utils.NotFound(c, "User not found")
	}

	if !user.HasPaid {
		now := time.Now()
		user.HasPaid = true
		user.PaymentDate = &now
		if !user.PhoneVerified {
			user.PhoneVerified = true
			user.PhoneVerifiedAt = &now
		}
		if err := ac.Store.UpdateUser(user); err != nil {
			return utils.InternalServerError(c, "Could not update user")
		}
		if _, err := ac.Tracker.EnsureRecord(user.ID); err != nil {
			return utils.InternalServerError(c, "Could not create progress record")
		}
	}

	return c.JSON(fiber.Map{
		"message": "Payment recorded",
		"user": fiber.Map{
			"id":           user.ID,
			"has_paid":     user.HasPaid,
			"payment_date": user.PaymentDate,
		},
	})
}
