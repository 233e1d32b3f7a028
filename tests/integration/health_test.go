//go:build integration

package integration

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

// Both endpoints share the JSON contract of pkg/health: a healthy endpoint lists no
// checks, so a reachable postgres leaves /readyz without a "postgres" entry.
func TestHealthEndpoints(t *testing.T) {
	for _, path := range []string{"/livez", "/readyz"} {
		t.Run(strings.TrimPrefix(path, "/"), func(t *testing.T) {
			req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, baseURL+path, nil)
			if err != nil {
				t.Fatal(err)
			}
			req.Header.Set("X-Request-ID", "health-"+path[1:])
			resp, err := httpClient.Do(req)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			expectStatus(t, resp, http.StatusOK)

			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
				t.Errorf("content type: got %q", ct)
			}
			if got := resp.Header.Get("X-Request-ID"); got != "health-"+path[1:] {
				t.Errorf("request id: got %q", got)
			}
			body := decodeJSON[healthResponse](t, resp)
			if body.Status != "ok" {
				t.Errorf("status: got %q, want ok", body.Status)
			}
			if msg, failed := body.Checks["postgres"]; failed {
				t.Errorf("postgres check failed: %s", msg)
			}
			if len(body.Checks) != 0 {
				t.Errorf("healthy endpoint reported checks: %v", body.Checks)
			}
		})
	}
}

func TestHealthEndpoints_GetOnly(t *testing.T) {
	for _, path := range []string{"/livez", "/readyz"} {
		resp := doRequest(t, http.MethodPost, path, "", nil)
		resp.Body.Close()
		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("POST %s: got %d, want 405", path, resp.StatusCode)
		}
	}
}
