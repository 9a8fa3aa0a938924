package routes

import (
	"project/backend/auth"
	"project/backend/config"
	"project/backend/controllers"
	"project/backend/gateway"
	"project/backend/middleware"
	"project/backend/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, store gateway.Store, authSvc *auth.Service, cfg *config.Config) {
	tracker := services.NewProgressTracker(store)
	recorder := services.NewTestRecorder(store, tracker)
	certs := services.NewCertificateService(store, tracker)

	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(cfg, store)

	// Auth routes
	authController := controllers.NewAuthController(authSvc, cfg)
	app.Post("/api/auth/send-code", authController.SendCode)
	app.Post("/api/auth/verify-code", authController.VerifyCode)

	// User routes
	userController := controllers.NewUserController(store, tracker, cfg)
	app.Post("/api/user/register", authMiddleware, userController.CompleteRegistration)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)
	app.Put("/api/user/profile", authMiddleware, userController.UpdateProfile)

	// Chapter routes
	chaptersController := controllers.NewChaptersController(store, tracker, cfg)
	app.Get("/api/chapters/sample", chaptersController.GetSampleChapter)
	chapters := app.Group("/api/chapters", authMiddleware)
	chapters.Get("/", chaptersController.ListChapters)
	chapters.Get("/:number", chaptersController.GetChapter)

	// Test routes
	testsController := controllers.NewTestsController(store, recorder, cfg)
	chapters.Post("/:number/test", testsController.SubmitTest)
	chapters.Get("/:number/test/result", testsController.GetTestResult)
	app.Get("/api/tests", authMiddleware, testsController.GetUserTests)

	// Progress routes
	progressController := controllers.NewProgressController(tracker, cfg)
	app.Get("/api/progress", authMiddleware, progressController.GetProgress)

	// Certificate routes
	certificateController := controllers.NewCertificateController(store, certs, cfg)
	app.Get("/api/certificate/eligibility", authMiddleware, certificateController.GetEligibility)
	app.Post("/api/certificate", authMiddleware, certificateController.IssueCertificate)
	app.Get("/api/certificate", authMiddleware, certificateController.GetCertificate)
	app.Get("/api/certificates/:slug", certificateController.VerifyCertificate)

	// Admin routes (manual payment confirmation)
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	adminController := controllers.NewAdminController(store, tracker, cfg)
	admin.Get("/users", adminController.ListUsers)
	admin.Post("/users/:id/payment", adminController.MarkPaymentComplete)
}
