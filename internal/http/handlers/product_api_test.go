package handlers_test

import (
	"net/http"
	"testing"
)

var widget = map[string]any{
	"name":        "Widget",
	"description": "A widget.",
	"price":       "9.99",
	"stock":       3,
}

func TestWidgetLifecycle(t *testing.T) {
	app := newTestApp(t, testConfig())
	alice, _ := login(t, app, "alice@stockroom.test")
	bob, _ := login(t, app, "bob@stockroom.test")

	// Alice creates the widget.
	resp := request(t, app, "POST", "/api/v1/products", alice, widget)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status %d", resp.StatusCode)
	}
	created := decodeJSON(t, resp)
	id, _ := created["id"].(string)
	if id == "" {
		t.Fatal("no id assigned")
	}
	if created["is_in_stock"] != true {
		t.Fatal("expected is_in_stock true")
	}
	if created["price"] != "9.99" {
		t.Fatalf("price = %v", created["price"])
	}
	if created["created"] != created["updated"] {
		t.Fatalf("created %v != updated %v at creation", created["created"], created["updated"])
	}

	// Reads are unrestricted for authenticated callers.
	resp = request(t, app, "GET", "/api/v1/products/"+id, bob, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("bob retrieve: status %d", resp.StatusCode)
	}

	// Mutations by a non-owner are forbidden.
	resp = request(t, app, "DELETE", "/api/v1/products/"+id, bob, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("bob delete: status %d", resp.StatusCode)
	}
	resp = request(t, app, "PATCH", "/api/v1/products/"+id, bob, map[string]any{"stock": 1})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("bob patch: status %d", resp.StatusCode)
	}

	// The owner updates stock to zero.
	resp = request(t, app, "PATCH", "/api/v1/products/"+id, alice, map[string]any{"stock": 0})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("alice patch: status %d", resp.StatusCode)
	}
	updated := decodeJSON(t, resp)
	if updated["is_in_stock"] != false {
		t.Fatal("expected is_in_stock false after stock 0")
	}
	if updated["name"] != "Widget" {
		t.Fatalf("partial update clobbered name: %v", updated["name"])
	}
	cr, _ := updated["created"].(string)
	up, _ := updated["updated"].(string)
	if up < cr {
		t.Fatalf("updated %q before created %q", up, cr)
	}

	// The owner deletes; a later retrieve is 404.
	resp = request(t, app, "DELETE", "/api/v1/products/"+id, alice, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("alice delete: status %d", resp.StatusCode)
	}
	resp = request(t, app, "GET", "/api/v1/products/"+id, alice, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("retrieve after delete: status %d", resp.StatusCode)
	}
}

func TestProductsRequireAuth(t *testing.T) {
	app := newTestApp(t, testConfig())

	resp := request(t, app, "GET", "/api/v1/products", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no credentials: status %d", resp.StatusCode)
	}
	resp = request(t, app, "GET", "/api/v1/products", "garbage-token", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("garbage token: status %d", resp.StatusCode)
	}
	if body := decodeJSON(t, resp); body["detail"] != "token is invalid" {
		t.Fatalf("detail = %v", body["detail"])
	}
}

func TestCreateValidationErrors(t *testing.T) {
	app := newTestApp(t, testConfig())
	alice, _ := login(t, app, "alice@stockroom.test")

	resp := request(t, app, "POST", "/api/v1/products", alice, map[string]any{
		"name":  "",
		"price": "cheap",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d", resp.StatusCode)
	}
	body := decodeJSON(t, resp)
	for _, field := range []string{"name", "price", "stock"} {
		if _, ok := body[field]; !ok {
			t.Fatalf("expected field error for %q, got %v", field, body)
		}
	}
}

func TestPutRequiresAllWritableFields(t *testing.T) {
	app := newTestApp(t, testConfig())
	alice, _ := login(t, app, "alice@stockroom.test")

	resp := request(t, app, "POST", "/api/v1/products", alice, widget)
	created := decodeJSON(t, resp)
	id := created["id"].(string)

	resp = request(t, app, "PUT", "/api/v1/products/"+id, alice, map[string]any{"name": "Gadget"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("partial PUT: status %d", resp.StatusCode)
	}

	resp = request(t, app, "PUT", "/api/v1/products/"+id, alice, map[string]any{
		"name":        "Gadget",
		"description": "A gadget.",
		"price":       "19.99",
		"stock":       1,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("full PUT: status %d", resp.StatusCode)
	}
	if got := decodeJSON(t, resp); got["name"] != "Gadget" || got["price"] != "19.99" {
		t.Fatalf("PUT result: %v", got)
	}
}

func TestListProducts(t *testing.T) {
	app := newTestApp(t, testConfig())
	alice, _ := login(t, app, "alice@stockroom.test")
	bob, _ := login(t, app, "bob@stockroom.test")

	request(t, app, "POST", "/api/v1/products", alice, widget)
	request(t, app, "POST", "/api/v1/products", bob, map[string]any{
		"name": "Gizmo", "price": "1.50", "stock": 0,
	})

	resp := request(t, app, "GET", "/api/v1/products", alice, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: status %d", resp.StatusCode)
	}
	if items := decodeJSONList(t, resp); len(items) != 2 {
		t.Fatalf("global list: %d items", len(items))
	}
}

func TestOwnerScopedList(t *testing.T) {
	cfg := testConfig()
	cfg.OwnerScopedList = true
	app := newTestApp(t, cfg)
	alice, _ := login(t, app, "alice@stockroom.test")
	bob, _ := login(t, app, "bob@stockroom.test")

	request(t, app, "POST", "/api/v1/products", alice, widget)
	request(t, app, "POST", "/api/v1/products", bob, map[string]any{
		"name": "Gizmo", "price": "1.50", "stock": 0,
	})

	resp := request(t, app, "GET", "/api/v1/products", alice, nil)
	items := decodeJSONList(t, resp)
	if len(items) != 1 {
		t.Fatalf("owner-scoped list: %d items", len(items))
	}
	if items[0]["name"] != "Widget" {
		t.Fatalf("wrong record: %v", items[0]["name"])
	}
}
