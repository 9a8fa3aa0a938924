package controllers

import (
	"errors"

	"project/backend/auth"
	"project/backend/config"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Auth *auth.Service
	Cfg  *config.Config
}

func NewAuthController(authSvc *auth.Service, cfg *config.Config) *AuthController {
	return &AuthController{Auth: authSvc, Cfg: cfg}
}

// SendCode godoc
// @Summary Send a verification code
// @Description Issues a one-time code to the given phone number
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Contact"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /auth/send-code [post]
func (ac *AuthController) SendCode(c *fiber.Ctx) error {
	var input struct {
		Contact string `json:"contact" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if errs := utils.Validate(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	if err := ac.Auth.SendCode(input.Contact); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not send verification code",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Verification code sent",
	})
}

// VerifyCode godoc
// @Summary Verify a one-time code
// @Description Checks the code and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Contact and code"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/verify-code [post]
func (ac *AuthController) VerifyCode(c *fiber.Ctx) error {
	var input struct {
		Contact string `json:"contact" validate:"required"`
		Code    string `json:"code" validate:"required,len=6"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if errs := utils.Validate(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	user, err := ac.Auth.VerifyCode(input.Contact, input.Code)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCode) || errors.Is(err, auth.ErrExpiredCode) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not verify code",
		})
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":        user.ID,
			"phone":     user.PhoneNumber,
			"full_name": user.FullName,
			"has_paid":  user.HasPaid,
		},
	})
}
