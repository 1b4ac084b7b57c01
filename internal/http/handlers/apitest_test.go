package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/config"
	"stockroom/internal/http/handlers"
	"stockroom/internal/repos"
)

func testConfig() config.Config {
	return config.Config{
		DBDSN:         ":memory:",
		JWTSecret:     "test-secret",
		AccessTTL:     5 * time.Minute,
		RefreshTTL:    time.Hour,
		RotateRefresh: true,
	}
}

func newTestApp(t *testing.T, cfg config.Config) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	app := fiber.New()
	handlers.NewDeps(db, cfg).Register(app)
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "not found"})
	})
	return app
}

func request(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	out := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func decodeJSONList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

// login obtains a token pair for one of the seeded users.
func login(t *testing.T, app *fiber.App, email string) (access, refresh string) {
	t.Helper()
	resp := request(t, app, "POST", "/api/v1/auth/token", "", map[string]any{
		"email":    email,
		"password": "Passw0rd!",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", email, resp.StatusCode)
	}
	body := decodeJSON(t, resp)
	access, _ = body["access"].(string)
	refresh, _ = body["refresh"].(string)
	if access == "" || refresh == "" {
		t.Fatalf("incomplete token pair: %v", body)
	}
	return access, refresh
}
