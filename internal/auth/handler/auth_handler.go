package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AniTigerSib/BookTrackerBackend/internal/auth/dto"
	"github.com/AniTigerSib/BookTrackerBackend/internal/auth/service"
	autherror "github.com/AniTigerSib/BookTrackerBackend/internal/errors"
	"github.com/AniTigerSib/BookTrackerBackend/pkg/constant"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if input.Login == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "login and password are required",
		})
	}

	tokens, err := h.userService.Register(c.Context(), input)
	if err != nil {
		if autherror.IsAuthError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(tokens)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	tokens, err := h.userService.Login(c.Context(), input)
	if err != nil {
		if autherror.IsAuthError(err) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	tokens, err := h.userService.Refresh(c.Context(), input.RefreshToken)
	if err != nil {
		if autherror.IsAuthError(err) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := c.Locals(constant.UserContextKey).(*service.JWTCustomClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "access token required"})
	}

	if err := h.userService.Logout(c.Context(), claims.UserID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "logged out successfully"})
}
