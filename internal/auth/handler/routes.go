package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the session endpoints. Logout is the only one
// behind the guard: the others establish identity rather than require it.
func RegisterRoutes(app *fiber.App, h *AuthHandler, guard fiber.Handler) {
	app.Post("/api/v1/register", h.Register)
	app.Post("/api/v1/login", h.Login)
	app.Post("/api/v1/refresh", h.Refresh)
	app.Post("/api/v1/logout", guard, h.Logout)
}
