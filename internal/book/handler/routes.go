package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the catalog endpoints behind the request guard.
// The fixed paths /books/search and /books/read are registered before
// /books/:id so they are not captured by the parameter route.
func RegisterRoutes(app *fiber.App, h *BookHandler, guard fiber.Handler) {
	api := app.Group("/api/v1", guard)

	api.Get("/books", h.GetBooks)
	api.Get("/books/search", h.SearchBooks)
	api.Get("/books/read", h.GetRead)
	api.Post("/books/read", h.ToggleRead)
	api.Get("/books/:id", h.GetBookByID)
	api.Post("/books/:id/rate", h.RateBook)
	api.Get("/booklist", h.GetBooklist)
	api.Post("/booklist", h.ToggleBooklist)
}
