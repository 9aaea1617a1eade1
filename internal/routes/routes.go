package routes

import (
	"time"

	"github.com/SOrtizRamirez/empleabilidad-api/internal/config"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/handlers"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/middleware"
	"github.com/SOrtizRamirez/empleabilidad-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	vacancyHandler *handlers.VacancyHandler,
	applicationHandler *handlers.ApplicationHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth: stricter rate limit on the public endpoints
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", middleware.JWTProtected(cfg), authHandler.Me)
	auth.Post("/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	jwt := middleware.JWTProtected(cfg)

	// Vacancies: creation is for staff, mutation ownership is enforced
	// in the service
	vacancies := api.Group("/vacancies", jwt)
	vacancies.Post("/",
		middleware.RolesRequired(cfg, models.RoleAdmin, models.RoleGestor),
		vacancyHandler.Create)
	vacancies.Get("/", vacancyHandler.FindAll)
	vacancies.Get("/search", vacancyHandler.Search)
	vacancies.Get("/:id", vacancyHandler.FindOne)
	vacancies.Patch("/:id",
		middleware.RolesRequired(cfg, models.RoleAdmin, models.RoleGestor, models.RoleCoder),
		vacancyHandler.Update)
	vacancies.Delete("/:id",
		middleware.RolesRequired(cfg, models.RoleAdmin, models.RoleGestor, models.RoleCoder),
		vacancyHandler.Remove)

	// Applications
	applications := api.Group("/applications", jwt)
	applications.Post("/",
		middleware.RolesRequired(cfg, models.RoleCoder),
		applicationHandler.Apply)
	applications.Get("/",
		middleware.RolesRequired(cfg, models.RoleAdmin, models.RoleGestor),
		applicationHandler.FindAll)
	applications.Get("/me",
		middleware.RolesRequired(cfg, models.RoleCoder),
		applicationHandler.FindMine)
	applications.Get("/:id", applicationHandler.FindOne)
	applications.Patch("/:id/status",
		middleware.RolesRequired(cfg, models.RoleAdmin, models.RoleGestor),
		applicationHandler.UpdateStatus)
}
