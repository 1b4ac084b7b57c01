package handlers_test

import (
	"net/http"
	"testing"
	"time"
)

func TestObtainTokenBadCredentials(t *testing.T) {
	app := newTestApp(t, testConfig())

	resp := request(t, app, "POST", "/api/v1/auth/token", "", map[string]any{
		"email":    "alice@stockroom.test",
		"password": "wrongpass",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad password: status %d", resp.StatusCode)
	}
	resp = request(t, app, "POST", "/api/v1/auth/token", "", map[string]any{
		"email":    "not-an-email",
		"password": "Passw0rd!",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad email format: status %d", resp.StatusCode)
	}
}

func TestExpiredAccessToken(t *testing.T) {
	cfg := testConfig()
	cfg.AccessTTL = time.Millisecond
	app := newTestApp(t, cfg)
	alice, _ := login(t, app, "alice@stockroom.test")

	time.Sleep(20 * time.Millisecond)

	resp := request(t, app, "GET", "/api/v1/products", alice, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if body := decodeJSON(t, resp); body["detail"] != "token has expired" {
		t.Fatalf("detail = %v", body["detail"])
	}
}

func TestRefreshRotation(t *testing.T) {
	app := newTestApp(t, testConfig())
	_, refresh := login(t, app, "alice@stockroom.test")

	resp := request(t, app, "POST", "/api/v1/auth/token/refresh", "", map[string]any{"refresh": refresh})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("refresh: status %d", resp.StatusCode)
	}
	body := decodeJSON(t, resp)
	next, _ := body["refresh"].(string)
	if next == "" || next == refresh {
		t.Fatal("rotation must issue a replacement refresh token")
	}
	if access, _ := body["access"].(string); access == "" {
		t.Fatal("no access token issued")
	}

	// Reusing the rotated-out token fails.
	resp = request(t, app, "POST", "/api/v1/auth/token/refresh", "", map[string]any{"refresh": refresh})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("reuse: status %d", resp.StatusCode)
	}
	if body := decodeJSON(t, resp); body["detail"] != "token is invalid" {
		t.Fatalf("detail = %v", body["detail"])
	}

	// The replacement is live.
	resp = request(t, app, "POST", "/api/v1/auth/token/refresh", "", map[string]any{"refresh": next})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("replacement refresh: status %d", resp.StatusCode)
	}
}

func TestRefreshRejectsGarbage(t *testing.T) {
	app := newTestApp(t, testConfig())

	resp := request(t, app, "POST", "/api/v1/auth/token/refresh", "", map[string]any{"refresh": "garbage"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status %d", resp.StatusCode)
	}
}

func TestRefreshEndpointThrottled(t *testing.T) {
	app := newTestApp(t, testConfig())

	// The refresh route shares the token throttle, so hammering it with
	// garbage trips the limit just like the obtain route.
	for i := 0; i < 10; i++ {
		resp := request(t, app, "POST", "/api/v1/auth/token/refresh", "", map[string]any{"refresh": "garbage"})
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("attempt %d: status %d", i, resp.StatusCode)
		}
	}
	resp := request(t, app, "POST", "/api/v1/auth/token/refresh", "", map[string]any{"refresh": "garbage"})
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("over limit: status %d", resp.StatusCode)
	}
}

func TestAccessTokenCannotRefresh(t *testing.T) {
	app := newTestApp(t, testConfig())
	access, _ := login(t, app, "alice@stockroom.test")

	resp := request(t, app, "POST", "/api/v1/auth/token/refresh", "", map[string]any{"refresh": access})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status %d", resp.StatusCode)
	}
}
