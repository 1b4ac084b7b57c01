package handlers

import (
	applog "stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth *services.AuthService
}

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

// ObtainToken exchanges credentials for an access/refresh pair.
func (h *AuthHandler) ObtainToken(c *fiber.Ctx) error {
	var req tokenRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "malformed JSON body")
	}
	if _, ok := validate.Email(req.Email); !ok || req.Password == "" {
		applog.Security(c, "auth.token.fail", map[string]any{"reason": "bad_format"})
		return detail(c, fiber.StatusUnauthorized, "invalid email or password")
	}
	u, pair, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		return fail(c, "auth.token", err)
	}
	applog.Audit(c, "auth.token.issued", map[string]any{"user_id": u.ID})
	return c.JSON(tokenPairBody(pair))
}

// RefreshToken redeems a refresh token for a new access token, plus a
// replacement refresh token when rotation is on.
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req refreshRequest
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "malformed JSON body")
	}
	if req.Refresh == "" {
		return detail(c, fiber.StatusUnauthorized, "token is invalid")
	}
	pair, err := h.Auth.RefreshTokens(req.Refresh)
	if err != nil {
		applog.Security(c, "auth.refresh.reject", nil)
		return fail(c, "auth.refresh", err)
	}
	applog.Audit(c, "auth.refresh.issued", nil)
	return c.JSON(tokenPairBody(pair))
}

func tokenPairBody(pair *services.TokenPair) fiber.Map {
	body := fiber.Map{
		"access":     pair.Access,
		"expires_in": pair.ExpiresIn,
		"token_type": "Bearer",
	}
	if pair.Refresh != "" {
		body["refresh"] = pair.Refresh
	}
	return body
}
