package handlers

import (
	"strings"

	"stockroom/internal/domain"
	applog "stockroom/internal/log"
	"stockroom/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireUser validates the Authorization bearer token and attaches the
// resolved caller to the request context.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := bearerToken(c)
		if !ok {
			applog.Security(c, "authn.missing", nil)
			return detail(c, fiber.StatusUnauthorized, "authentication credentials were not provided")
		}
		u, err := auth.UserFromAccess(raw)
		if err != nil {
			applog.Security(c, "authn.reject", nil)
			return fail(c, "authn", err)
		}
		c.Locals("user", u)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	h := c.Get(fiber.HeaderAuthorization)
	tok, found := strings.CutPrefix(h, "Bearer ")
	if !found || tok == "" {
		return "", false
	}
	return tok, true
}

// caller returns the authenticated user, nil on unauthenticated routes.
func caller(c *fiber.Ctx) *domain.User {
	u, _ := c.Locals("user").(*domain.User)
	return u
}
