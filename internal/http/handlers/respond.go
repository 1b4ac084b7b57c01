package handlers

import (
	"encoding/json"
	"errors"

	applog "stockroom/internal/log"
	"stockroom/internal/repos"
	"stockroom/internal/services"
	"stockroom/internal/wire"

	"github.com/gofiber/fiber/v2"
)

func detail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"detail": msg})
}

// decodeBody parses a JSON object body for the schema decoders.
func decodeBody(c *fiber.Ctx) (map[string]any, error) {
	body := map[string]any{}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return nil, err
	}
	return body, nil
}

// fail maps the request error taxonomy onto HTTP responses. The first
// failure a handler hits lands here; nothing is retried.
func fail(c *fiber.Ctx, action string, err error) error {
	var verr *wire.ValidationError
	switch {
	case errors.As(err, &verr):
		applog.Security(c, action+".invalid", map[string]any{"fields": verr.FieldNames()})
		return c.Status(fiber.StatusBadRequest).JSON(verr.Fields)
	case errors.Is(err, repos.ErrNotFound):
		return detail(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, errUnauthenticated):
		return detail(c, fiber.StatusUnauthorized, "authentication credentials were not provided")
	case errors.Is(err, errForbidden):
		applog.Security(c, action+".forbidden", nil)
		return detail(c, fiber.StatusForbidden, "you do not have permission to perform this action")
	case errors.Is(err, services.ErrTokenExpired):
		return detail(c, fiber.StatusUnauthorized, "token has expired")
	case errors.Is(err, services.ErrTokenInvalid):
		return detail(c, fiber.StatusUnauthorized, "token is invalid")
	case errors.Is(err, services.ErrBadCreds):
		applog.Security(c, action+".badcreds", nil)
		return detail(c, fiber.StatusUnauthorized, "invalid email or password")
	default:
		applog.Error(c, action, err, nil)
		return detail(c, fiber.StatusInternalServerError, "internal server error")
	}
}
