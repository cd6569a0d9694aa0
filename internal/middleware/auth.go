// Package middleware contains the request guard: every protected route
// runs through it before any handler sees the request.
package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/AniTigerSib/BookTrackerBackend/internal/auth/service"
	"github.com/AniTigerSib/BookTrackerBackend/pkg/constant"
)

// SessionChecker reports whether the user behind a verified access token
// still holds a live session. *service.UserService implements it.
type SessionChecker interface {
	HasActiveSession(ctx context.Context, userID int64) (bool, error)
}

// RequireAuth verifies the bearer token and resolves it to a live session.
// A syntactically valid access token belonging to a logged-out user is
// rejected: access tokens die with the session, not with their expiry.
func RequireAuth(tokens service.TokenGenerator, sessions SessionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "access token required",
			})
		}

		claims, err := tokens.VerifyAccessToken(token)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "invalid or expired token",
			})
		}

		if sessions != nil {
			active, err := sessions.HasActiveSession(c.Context(), claims.UserID)
			if err != nil {
				return err
			}
			if !active {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"message": "invalid or expired token",
				})
			}
		}

		c.Locals(constant.UserContextKey, claims)

		return c.Next()
	}
}

// UserClaims pulls the verified claims the guard stored on the request.
func UserClaims(c *fiber.Ctx) (*service.JWTCustomClaims, bool) {
	claims, ok := c.Locals(constant.UserContextKey).(*service.JWTCustomClaims)
	return claims, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}

	return strings.TrimSpace(header[len(prefix):])
}
