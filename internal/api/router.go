package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	swagger "github.com/go-swagno/swagno-fiber/swagger"

	"github.com/ekyc-labs/ekyc-api/internal/api/docs"
	"github.com/ekyc-labs/ekyc-api/internal/api/handler"
	"github.com/ekyc-labs/ekyc-api/internal/api/middleware"
	"github.com/ekyc-labs/ekyc-api/internal/auth"
	"github.com/ekyc-labs/ekyc-api/internal/service"
)

type Dependencies struct {
	VerificationService *service.VerificationService
	AuthService         *auth.Service
	JWTService          *auth.JWTService
	Device              string
}

type Router struct {
	app    *fiber.App
	logger *slog.Logger
	deps   *Dependencies
}

func NewRouter(logger *slog.Logger, deps *Dependencies) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "eKYC Face Verification API",
		// Two 10MB images plus multipart framing
		BodyLimit: 25 * 1024 * 1024,
	})

	return &Router{
		app:    app,
		logger: logger,
		deps:   deps,
	}
}

func (r *Router) Setup() {
	// Global middlewares
	r.app.Use(requestid.New())
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Swagger documentation (no auth required)
	sw := docs.NewSwagger()
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	// Public endpoints
	healthHandler := handler.NewHealthHandler(r.deps.VerificationService, r.deps.Device)
	r.app.Get("/", healthHandler.Root)
	r.app.Get("/health", healthHandler.Health)

	verificationHandler := handler.NewVerificationHandler(r.deps.VerificationService, r.logger)
	r.app.Post("/verify", verificationHandler.Verify)
	r.app.Post("/detect-face", verificationHandler.DetectFace)

	// Admin surface
	adminHandler := handler.NewAdminHandler(r.deps.AuthService, r.deps.VerificationService, r.logger)

	adminGroup := r.app.Group("/admin")
	adminGroup.Post("/login", adminHandler.Login)

	protected := adminGroup.Group("", middleware.AdminAuth(middleware.AdminAuthDependencies{
		JWTService: r.deps.JWTService,
		Logger:     r.logger,
	}))
	protected.Get("/verifications", adminHandler.ListVerifications)
	protected.Get("/stats", adminHandler.Stats)
	protected.Delete("/verifications/:id", adminHandler.DeleteVerification)
}

func (r *Router) App() *fiber.App {
	return r.app
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

func (r *Router) Shutdown() error {
	return r.app.Shutdown()
}
