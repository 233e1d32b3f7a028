//go:build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestSeededWallets(t *testing.T) {
	for i := 1; i <= seededWallets; i++ {
		if got := getBalance(t, seededUser(i)); got == "" {
			t.Errorf("%s has no balance", seededUser(i))
		}
	}
}

func TestWallet_DepositWithdraw(t *testing.T) {
	user := fmt.Sprintf("wallet-%d", time.Now().UnixNano())
	tok := token(t, user, false)

	resp := doRequest(t, http.MethodGet, "/api/wallet", tok, nil)
	resp.Body.Close()
	expectStatus(t, resp, http.StatusNotFound)

	resp = doRequest(t, http.MethodPost, "/api/wallet/deposit", tok, map[string]any{"amount": "100.25"})
	resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)

	resp = doRequest(t, http.MethodPost, "/api/wallet/withdraw", tok, map[string]any{"amount": 0.25})
	defer resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)
	if w := decodeJSON[walletResponse](t, resp); w.Balance != "100" {
		t.Errorf("balance: got %s, want 100", w.Balance)
	}

	resp = doRequest(t, http.MethodPost, "/api/wallet/withdraw", tok, map[string]any{"amount": 101})
	resp.Body.Close()
	expectStatus(t, resp, http.StatusUnprocessableEntity)

	resp = doRequest(t, http.MethodPost, "/api/wallet/deposit", tok, map[string]any{"amount": -1})
	resp.Body.Close()
	expectStatus(t, resp, http.StatusBadRequest)

	if got := getBalance(t, user); got != "100" {
		t.Errorf("balance after rejected calls: got %s, want 100", got)
	}
}

func TestWallet_Transfer(t *testing.T) {
	from := fmt.Sprintf("payer-%d", time.Now().UnixNano())
	to := fmt.Sprintf("payee-%d", time.Now().UnixNano())
	for user, amount := range map[string]string{from: "50", to: "5"} {
		resp := doRequest(t, http.MethodPost, "/api/wallet/deposit", token(t, user, false), map[string]any{"amount": amount})
		resp.Body.Close()
		expectStatus(t, resp, http.StatusOK)
	}

	resp := doRequest(t, http.MethodPost, "/api/wallet/transfer", token(t, from, false),
		map[string]any{"to": to, "amount": "20"})
	resp.Body.Close()
	expectStatus(t, resp, http.StatusOK)

	resp = doRequest(t, http.MethodPost, "/api/wallet/transfer", token(t, from, false),
		map[string]any{"to": "nobody-" + to, "amount": "1"})
	resp.Body.Close()
	expectStatus(t, resp, http.StatusNotFound)

	if got := getBalance(t, from); got != "30" {
		t.Errorf("payer balance: got %s, want 30", got)
	}
	if got := getBalance(t, to); got != "25" {
		t.Errorf("payee balance: got %s, want 25", got)
	}
}
