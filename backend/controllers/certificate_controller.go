package controllers

import (
	"errors"

	"project/backend/config"
	"project/backend/gateway"
	"project/backend/models"
	"project/backend/services"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CertificateController struct {
	Store gateway.Store
	Certs *services.CertificateService
	Cfg   *config.Config
}

func NewCertificateController(store gateway.Store, certs *services.CertificateService, cfg *config.Config) *CertificateController {
	return &CertificateController{Store: store, Certs: certs, Cfg: cfg}
}

func (cc *CertificateController) GetEligibility(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	eligible, err := cc.Certs.Eligible(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	completed := 0
	if p, err := cc.Certs.Tracker.Get(userID); err == nil {
		completed = len(p.CompletedChapters)
	}

	return c.JSON(fiber.Map{
		"eligible":  eligible,
		"completed": completed,
		"required":  services.TotalRequiredChapters,
	})
}

// IssueCertificate godoc
// @Summary Issue the completion certificate
// @Description Creates the user's certificate once all chapters are passed; repeated calls return the same certificate
// @Tags certificate
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /certificate [post]
func (cc *CertificateController) IssueCertificate(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	user, err := cc.Store.GetUser(userID)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}
	if !user.WantsCertificate {
		return utils.Forbidden(c, "Certificate was declined at registration")
	}

	cert, err := cc.Certs.Issue(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotEligible) {
			return utils.Forbidden(c, "Not all chapters have been passed yet")
		}
		return utils.InternalServerError(c, "Could not issue certificate")
	}

	return c.JSON(certificateView(cert, user))
}

func (cc *CertificateController) GetCertificate(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	cert, err := cc.Certs.Get(userID)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return utils.NotFound(c, "No certificate issued")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	user, err := cc.Store.GetUser(userID)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}

	return c.JSON(certificateView(cert, user))
}

// VerifyCertificate resolves a public verification link by slug.
func (cc *CertificateController) VerifyCertificate(c *fiber.Ctx) error {
	cert, err := cc.Certs.GetBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return utils.NotFound(c, "Certificate not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	user, err := cc.Store.GetUser(cert.UserID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	return c.JSON(fiber.Map{
		"number":      services.Number(cert.UserID, cert.IssuedDate),
		"full_name":   user.FullName,
		"issued_date": cert.IssuedDate,
	})
}

func certificateView(cert *models.Certificate, user *models.User) fiber.Map {
	return fiber.Map{
		"certificate": fiber.Map{
			"number":      services.Number(cert.UserID, cert.IssuedDate),
			"slug":        cert.Slug,
			"issued_date": cert.IssuedDate,
			"full_name":   user.FullName,
		},
	}
}
