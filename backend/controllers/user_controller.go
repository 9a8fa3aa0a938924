package controllers

import (
	"time"

	"project/backend/config"
	"project/backend/gateway"
	"project/backend/models"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Store   gateway.Store
	Tracker *services.ProgressTracker
	Cfg     *config.Config
}

func NewUserController(store gateway.Store, tracker *services.ProgressTracker, cfg *config.Config) *UserController {
	return &UserController{Store: store, Tracker: tracker, Cfg: cfg}
}

type RegisterRequest struct {
	FullName         string `json:"full_name" validate:"required,min=2"`
	Email            string `json:"email" validate:"omitempty,email"`
	Age              int    `json:"age" validate:"omitempty,gte=10,lte=120"`
	Qualification    string `json:"qualification"`
	WantsCertificate *bool  `json:"wants_certificate"`
}

// CompleteRegistration godoc
// @Summary Complete registration
// @Description Fills in the verified user's profile and creates the initial progress record
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Profile details"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/register [post]
func (uc *UserController) CompleteRegistration(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var input RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if errs := utils.Validate(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	user, err := uc.Store.GetUser(userID)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}

	// The certificate prints the name given here; once payment is in, the
	// name is locked.
	if user.HasPaid && user.FullName != "" && user.FullName != input.FullName {
		return utils.Forbidden(c, "Name cannot be changed after payment")
	}

	user.FullName = input.FullName
	user.Age = input.Age
	user.Qualification = input.Qualification
	if input.Email != "" {
		now := time.Now()
		user.Email = input.Email
		user.EmailVerified = true
		user.EmailVerifiedAt = &now
	}
	if input.WantsCertificate != nil {
		user.WantsCertificate = *input.WantsCertificate
	}

	if err := uc.Store.UpdateUser(user); err != nil {
		return utils.InternalServerError(c, "Could not update profile")
	}

	// Safe to call again on re-verification.
	if _, err := uc.Tracker.EnsureRecord(user.ID); err != nil {
		return utils.InternalServerError(c, "Could not create progress record")
	}

	return c.JSON(fiber.Map{
		"message": "Registration complete",
		"user":    profileView(user),
	})
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	user, err := uc.Store.GetUser(userID)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}

	return c.JSON(profileView(user))
}

func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	var input struct {
		FullName         string `json:"full_name"`
		Email            string `json:"email" validate:"omitempty,email"`
		Age              int    `json:"age" validate:"omitempty,gte=10,lte=120"`
		Qualification    string `json:"qualification"`
		WantsCertificate *bool  `json:"wants_certificate"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if errs := utils.Validate(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	user, err := uc.Store.GetUser(userID)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}

	if input.FullName != "" && input.FullName != user.FullName {
		if user.HasPaid {
			return utils.Forbidden(c, "Name cannot be changed after payment")
		}
		user.FullName = input.FullName
	}
	if input.Email != "" && input.Email != user.Email {
		user.Email = input.Email
		user.EmailVerified = false
		user.EmailVerifiedAt = nil
	}
	if input.Age != 0 {
		user.Age = input.Age
	}
	if input.Qualification != "" {
		user.Qualification = input.Qualification
	}
	if input.WantsCertificate != nil {
		user.WantsCertificate = *input.WantsCertificate
	}

	if err := uc.Store.UpdateUser(user); err != nil {
		return utils.InternalServerError(c, "Could not update profile")
	}

	return c.JSON(profileView(user))
}

func profileView(user *models.User) fiber.Map {
	return fiber.Map{
		"id":                user.ID,
		"phone":             user.PhoneNumber,
		"phone_verified":    user.PhoneVerified,
		"email":             user.Email,
		"email_verified":    user.EmailVerified,
		"full_name":         user.FullName,
		"age":               user.Age,
		"qualification":     user.Qualification,
		"has_paid":          user.HasPaid,
		"payment_date":      user.PaymentDate,
		"wants_certificate": user.WantsCertificate,
	}
}
