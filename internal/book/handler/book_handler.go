package handler

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/AniTigerSib/BookTrackerBackend/internal/book/domain"
	"github.com/AniTigerSib/BookTrackerBackend/internal/book/dto"
	"github.com/AniTigerSib/BookTrackerBackend/internal/book/service"
	bookerror "github.com/AniTigerSib/BookTrackerBackend/internal/errors"
	"github.com/AniTigerSib/BookTrackerBackend/internal/middleware"
	"github.com/AniTigerSib/BookTrackerBackend/pkg/constant"
	"github.com/AniTigerSib/BookTrackerBackend/pkg/sanitize"
)

type BookHandler struct {
	bookService *service.BookService
}

func NewBookHandler(bookService *service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

func (h *BookHandler) GetBooks(c *fiber.Ctx) error {
	claims, ok := middleware.UserClaims(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	categories, err := h.bookService.ListByCategories(c.Context(), claims.UserID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.FromCategories(categories))
}

func (h *BookHandler) SearchBooks(c *fiber.Ctx) error {
	claims, ok := middleware.UserClaims(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	query := sanitize.String(c.Query("q"), sanitize.Options{
		RemoveSpecialChars: true,
		MaxLength:          constant.SearchQueryMaxLen,
	})

	books, err := h.bookService.Search(c.Context(), claims.UserID, query)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.FromBooks(books))
}

func (h *BookHandler) GetBookByID(c *fiber.Ctx) error {
	claims, ok := middleware.UserClaims(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	bookID, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "incorrect book id"})
	}

	book, err := h.bookService.GetByID(c.Context(), claims.UserID, bookID)
	if err != nil {
		if bookerror.IsNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{})
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.FromBookExtended(book))
}

func (h *BookHandler) GetBooklist(c *fiber.Ctx) error {
	return h.listMembers(c, h.bookService.Booklist)
}

func (h *BookHandler) GetRead(c *fiber.Ctx) error {
	return h.listMembers(c, h.bookService.ReadList)
}

func (h *BookHandler) ToggleBooklist(c *fiber.Ctx) error {
	return h.toggle(c, h.bookService.ToggleBooklist)
}

func (h *BookHandler) ToggleRead(c *fiber.Ctx) error {
	return h.toggle(c, h.bookService.ToggleRead)
}

func (h *BookHandler) RateBook(c *fiber.Ctx) error {
	claims, ok := middleware.UserClaims(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	bookID, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "incorrect book id"})
	}

	var input dto.RateInput
	if err := c.BodyParser(&input); err != nil || input.Rating == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "incorrect rating value"})
	}

	rating, err := h.bookService.Rate(c.Context(), claims.UserID, bookID, *input.Rating)
	if err != nil {
		if bookerror.IsValidationError(err) || bookerror.IsNotFound(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromRating(rating))
}

func (h *BookHandler) listMembers(c *fiber.Ctx, list func(ctx context.Context, userID int64) ([]domain.Book, error)) error {
	claims, ok := middleware.UserClaims(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	books, err := list(c.Context(), claims.UserID)
	if err != nil {
		if bookerror.IsNotFound(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(dto.FromBooks(books))
}

func (h *BookHandler) toggle(c *fiber.Ctx, toggle func(ctx context.Context, userID, bookID int64) (*domain.ToggleResult, error)) error {
	claims, ok := middleware.UserClaims(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var input dto.ToggleInput
	if err := c.BodyParser(&input); err != nil || input.BookID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "incorrect book id"})
	}

	result, err := toggle(c.Context(), claims.UserID, input.BookID)
	if err != nil {
		if bookerror.IsNotFound(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return err
	}

	out := dto.ToggleOutput{UserID: result.UserID, BookID: result.BookID, Added: result.Added}

	// The original API answers toggles with the refreshed book card, so
	// clients can update their flags without a second round trip.
	if book, err := h.bookService.GetByID(c.Context(), claims.UserID, result.BookID); err == nil {
		out.Book = dto.FromBookExtended(book)
	}

	return c.Status(fiber.StatusOK).JSON(out)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, bookerror.ErrInvalidID
	}

	return id, nil
}
