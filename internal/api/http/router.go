package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/api/http/handlers"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/auth"
	"github.com/SergioAyalaHernandez/ms-users-crediya/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Auth           *handlers.AuthHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1", cfg.AuthMiddleware.Handle)
	api.Post("/login", cfg.Auth.Login)

	users := api.Group("/usuarios")
	users.Post("", auth.RequireAnyRole(domain.RoleAdmin, domain.RoleAdvisor), cfg.Users.Create)
	users.Get("", auth.RequireAnyRole(domain.RoleAdmin, domain.RoleUser, domain.RoleClient), cfg.Users.GetByDocument)
	users.Get("/me", auth.RequireAuthenticated(), cfg.Users.Me)
	users.Get("/:"+handlers.DocumentNumberParam, cfg.Users.GetByDocument)
}
