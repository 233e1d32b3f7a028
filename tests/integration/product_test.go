//go:build integration

package integration

import (
	"net/http"
	"testing"
)

func TestListProducts(t *testing.T) {
	resp := doGet(t, "/api/products")
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)

	products := decodeJSON[[]productResponse](t, resp)
	if len(products) < seededProducts {
		t.Fatalf("expected at least %d products, got %d", seededProducts, len(products))
	}
	for _, p := range products {
		if p.ID == "" || p.Name == "" || p.Price == "" {
			t.Errorf("incomplete product: %+v", p)
		}
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	for _, id := range []string{"999", "00000000-0000-0000-0000-000000000000"} {
		resp := doGet(t, "/api/products/"+id)
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("GET %s: expected 404, got %d", id, resp.StatusCode)
		}
	}
}

func TestCreateProduct_RequiresAdmin(t *testing.T) {
	body := map[string]any{"name": "Forbidden Cake", "price": "5", "stock": 1}

	resp := doRequest(t, http.MethodPost, "/api/products", "", body)
	resp.Body.Close()
	expectStatus(t, resp, http.StatusUnauthorized)

	resp = doRequest(t, http.MethodPost, "/api/products", token(t, seededUser(1), false), body)
	resp.Body.Close()
	expectStatus(t, resp, http.StatusForbidden)
}

func TestProductLifecycle(t *testing.T) {
	p := createProduct(t, "12.5", 4)
	if p.Price != "12.5" || p.Stock != 4 {
		t.Fatalf("unexpected product: %+v", p)
	}
	if got := getProduct(t, p.ID); got != p {
		t.Errorf("get: got %+v, want %+v", got, p)
	}

	// Names are unique.
	resp := doRequest(t, http.MethodPost, "/api/products", adminToken(t), map[string]any{
		"name": p.Name, "price": "1", "stock": 1,
	})
	resp.Body.Close()
	expectStatus(t, resp, http.StatusUnprocessableEntity)

	resp = doRequest(t, http.MethodPost, "/api/products/"+p.ID+"/restock", adminToken(t), map[string]any{"quantity": 6})
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)
	if restocked := decodeJSON[productResponse](t, resp); restocked.Stock != 10 {
		t.Errorf("stock after restock: got %d, want 10", restocked.Stock)
	}

	resp = doRequest(t, http.MethodPut, "/api/products/"+p.ID, adminToken(t), map[string]any{"price": "9"})
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)
	if updated := decodeJSON[productResponse](t, resp); updated.Price != "9" {
		t.Errorf("price after update: got %s, want 9", updated.Price)
	}

	resp = doRequest(t, http.MethodDelete, "/api/products/"+p.ID, adminToken(t), nil)
	resp.Body.Close()
	expectStatus(t, resp, http.StatusNoContent)

	resp = doGet(t, "/api/products/"+p.ID)
	resp.Body.Close()
	expectStatus(t, resp, http.StatusNotFound)
}
