package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/shop-ledger/gen/oas"
	"github.com/xenking/shop-ledger/internal/domain/inventory"
	"github.com/xenking/shop-ledger/internal/domain/order"
	"github.com/xenking/shop-ledger/internal/domain/product"
	"github.com/xenking/shop-ledger/internal/domain/wallet"
	"github.com/xenking/shop-ledger/internal/failure"
	"github.com/xenking/shop-ledger/internal/handler"
	"github.com/xenking/shop-ledger/internal/storage/memory"
	"github.com/xenking/shop-ledger/internal/txn"
	"github.com/xenking/shop-ledger/pkg/httpmiddleware"
)

var secret = []byte("test-secret")

type recordingReporter struct {
	mu     sync.Mutex
	events []failure.Event
}

func (r *recordingReporter) Report(_ context.Context, e failure.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingReporter) last(t *testing.T) failure.Event {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.events)
	return r.events[len(r.events)-1]
}

type server struct {
	http.Handler
	reporter *recordingReporter
}

func newServer(t *testing.T, orders order.RepositoryFactory) *server {
	t.Helper()
	exec, err := txn.NewExecutor(memory.New(), txn.Options{
		MaxAttempts: 3,
		IsTransient: memory.IsTransient,
	})
	require.NoError(t, err)
	if orders == nil {
		orders = memory.Orders
	}

	ledger := wallet.NewLedger(exec, memory.Wallets)
	reporter := &recordingReporter{}
	h := handler.New(
		product.NewCatalog(exec, memory.Products),
		ledger,
		order.NewService(exec, inventory.NewAccessor(memory.Products), ledger, orders),
		reporter,
	)
	api, err := oas.NewServer(h, handler.NewSecurityHandler(secret),
		oas.WithPathPrefix("/api"),
		oas.WithErrorHandler(h.HandleError),
		oas.WithNotFound(handler.NotFound),
	)
	require.NoError(t, err)
	return &server{
		Handler:  httpmiddleware.Wrap(api, httpmiddleware.RequestID()),
		reporter: reporter,
	}
}

func token(t *testing.T, userID string, admin bool) string {
	t.Helper()
	tok, err := handler.IssueToken(secret, userID, admin, time.Hour)
	require.NoError(t, err)
	return tok
}

func (s *server) do(t *testing.T, method, path, tok, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type productBody struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Stock int    `json:"stock"`
}

type walletBody struct {
	UserID  string `json:"user_id"`
	Balance string `json:"balance"`
}

type orderBody struct {
	ID      string `json:"id"`
	BuyerID string `json:"buyer_id"`
	Items   []struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
		UnitPrice string `json:"unit_price"`
	} `json:"items"`
	TotalPrice      string  `json:"total_price"`
	Status          string  `json:"status"`
	ShippingAddress *string `json:"shipping_address"`
}

func (s *server) createProduct(t *testing.T, name string, price string, stock int) productBody {
	t.Helper()
	body := `{"name":"` + name + `","price":` + price + `,"stock":` + jsonInt(stock) + `}`
	rec := s.do(t, http.MethodPost, "/api/products", token(t, "admin", true), body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[productBody](t, rec)
}

func jsonInt(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func TestProducts(t *testing.T) {
	s := newServer(t, nil)
	admin := token(t, "admin", true)
	body := `{"name":"Waffle","description":"Belgian","price":"6.5","stock":10}`

	t.Run("RequiresAdmin", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodPost, "/api/products", "", body).Code)
		assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodPost, "/api/products", token(t, "u1", false), body).Code)
	})

	rec := s.do(t, http.MethodPost, "/api/products", admin, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[productBody](t, rec)
	assert.Equal(t, "Waffle", created.Name)
	assert.Equal(t, "6.5", created.Price)
	assert.Equal(t, 10, created.Stock)

	t.Run("Read", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/products/"+created.ID, "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, created, decode[productBody](t, rec))

		rec = s.do(t, http.MethodGet, "/api/products", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]productBody](t, rec), 1)

		assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/products/not-a-uuid", "", "").Code)
	})
	t.Run("Rejected", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/products", admin, body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "duplicate name")

		rec = s.do(t, http.MethodPost, "/api/products", admin, `{"name":"Free","price":0}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, product.ErrInvalidPrice.Error(), decode[errorBody](t, rec).Message)

		rec = s.do(t, http.MethodPost, "/api/products", admin, `{"price":"1"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		msg := decode[errorBody](t, rec).Message
		assert.Contains(t, msg, "name")
		assert.Contains(t, msg, "field required")

		rec = s.do(t, http.MethodPost, "/api/products", admin, `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("UpdateRestockDelete", func(t *testing.T) {
		path := "/api/products/" + created.ID
		rec := s.do(t, http.MethodPut, path, admin, `{"price":7,"category":"sweets"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "7", decode[productBody](t, rec).Price)

		rec = s.do(t, http.MethodPost, path+"/restock", admin, `{"quantity":5}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 15, decode[productBody](t, rec).Stock)

		assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, path+"/restock", admin, `{"quantity":0}`).Code)

		assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, path, admin, "").Code)
		assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodDelete, path, admin, "").Code)
	})
}

func TestWallet(t *testing.T) {
	s := newServer(t, nil)
	alice := token(t, "alice", false)
	bob := token(t, "bob", false)

	assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/wallet", "", "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/wallet", alice, "").Code)

	rec := s.do(t, http.MethodPost, "/api/wallet/deposit", alice, `{"amount":100}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, walletBody{UserID: "alice", Balance: "100"}, decode[walletBody](t, rec))

	rec = s.do(t, http.MethodPost, "/api/wallet/withdraw", alice, `{"amount":"30"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "70", decode[walletBody](t, rec).Balance)

	rec = s.do(t, http.MethodPost, "/api/wallet/withdraw", alice, `{"amount":1000}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, failure.KindBusinessRule, s.reporter.last(t).Kind)
	assert.Equal(t, "alice", s.reporter.last(t).UserID)

	for _, body := range []string{`{"amount":-5}`, `{"amount":0}`, `{"amount":"abc"}`, `{}`, `[]`} {
		rec := s.do(t, http.MethodPost, "/api/wallet/deposit", alice, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}

	t.Run("Transfer", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/wallet/transfer", alice, `{"to":"bob","amount":10}`)
		assert.Equal(t, http.StatusNotFound, rec.Code, "receiver has no wallet")

		s.do(t, http.MethodPost, "/api/wallet/deposit", bob, `{"amount":1}`)
		rec = s.do(t, http.MethodPost, "/api/wallet/transfer", alice, `{"to":"bob","amount":10}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t,
			`{"from":{"user_id":"alice","balance":"60"},"to_user_id":"bob","amount":"10"}`,
			rec.Body.String())

		rec = s.do(t, http.MethodGet, "/api/wallet", bob, "")
		assert.Equal(t, "11", decode[walletBody](t, rec).Balance)

		rec = s.do(t, http.MethodPost, "/api/wallet/transfer", alice, `{"to":"alice","amount":1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOrders(t *testing.T) {
	s := newServer(t, nil)
	p := s.createProduct(t, "Latte", "10", 5)
	buyer := token(t, "buyer", false)
	other := token(t, "other", false)
	admin := token(t, "admin", true)
	s.do(t, http.MethodPost, "/api/wallet/deposit", buyer, `{"amount":50}`)

	itemsBody := func(qty int) string {
		return `{"items":[{"product_id":"` + p.ID + `","quantity":` + jsonInt(qty) + `}],"shipping_address":"1 Main St"}`
	}

	rec := s.do(t, http.MethodPost, "/api/orders", buyer, itemsBody(3))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[orderBody](t, rec)
	assert.Equal(t, "buyer", created.BuyerID)
	assert.Equal(t, "30", created.TotalPrice)
	assert.Equal(t, "pending", created.Status)
	require.Len(t, created.Items, 1)
	assert.Equal(t, "10", created.Items[0].UnitPrice)
	require.NotNil(t, created.ShippingAddress)

	rec = s.do(t, http.MethodGet, "/api/wallet", buyer, "")
	assert.Equal(t, "20", decode[walletBody](t, rec).Balance)
	rec = s.do(t, http.MethodGet, "/api/products/"+p.ID, "", "")
	assert.Equal(t, 2, decode[productBody](t, rec).Stock)

	t.Run("Rejected", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/orders", buyer, itemsBody(3))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "only 2 left")
		assert.ErrorIs(t, s.reporter.last(t).Err, inventory.ErrInsufficientStock)

		rec = s.do(t, http.MethodPost, "/api/orders", buyer, itemsBody(0))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = s.do(t, http.MethodPost, "/api/orders", buyer, `{"items":[]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = s.do(t, http.MethodPost, "/api/orders", buyer, `{"items":[{"product_id":"missing","quantity":1}]}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = s.do(t, http.MethodPost, "/api/orders", other, itemsBody(1))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "buyer without wallet")

		rec = s.do(t, http.MethodGet, "/api/products/"+p.ID, "", "")
		assert.Equal(t, 2, decode[productBody](t, rec).Stock)
	})

	t.Run("Read", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/orders", buyer, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]orderBody](t, rec), 1)

		path := "/api/orders/" + created.ID
		assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, path, buyer, "").Code)
		assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, path, admin, "").Code)
		assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, path, other, "").Code)
	})

	t.Run("Update", func(t *testing.T) {
		path := "/api/orders/" + created.ID
		assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodPatch, path, buyer, `{"status":"shipped"}`).Code)
		assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPatch, path, admin, `{"status":"lost"}`).Code)

		rec := s.do(t, http.MethodPatch, path, buyer, `{"shipping_address":"2 Side St"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "2 Side St", *decode[orderBody](t, rec).ShippingAddress)

		rec = s.do(t, http.MethodPatch, path, admin, `{"status":"paid"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		updated := decode[orderBody](t, rec)
		assert.Equal(t, "paid", updated.Status)
		assert.Equal(t, "30", updated.TotalPrice)
	})

	t.Run("Delete", func(t *testing.T) {
		path := "/api/orders/" + created.ID
		assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodDelete, path, other, "").Code)
		assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, path, buyer, "").Code)
		assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, path, buyer, "").Code)
	})
}

type conflictingOrders struct {
	order.Repository
}

func (conflictingOrders) Create(context.Context, *order.Order) error {
	return errors.Wrap(txn.ErrConflict, "insert order")
}

func TestOrders_ExhaustedIsUnavailable(t *testing.T) {
	s := newServer(t, func(sess txn.Session) order.Repository {
		return conflictingOrders{memory.Orders(sess)}
	})
	p := s.createProduct(t, "Mocha", "4", 1)
	buyer := token(t, "buyer", false)
	s.do(t, http.MethodPost, "/api/wallet/deposit", buyer, `{"amount":10}`)

	rec := s.do(t, http.MethodPost, "/api/orders", buyer,
		`{"items":[{"product_id":"`+p.ID+`","quantity":1}]}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, failure.KindExhausted, s.reporter.last(t).Kind)

	rec = s.do(t, http.MethodGet, "/api/products/"+p.ID, "", "")
	assert.Equal(t, 1, decode[productBody](t, rec).Stock)
}

func TestSecurityHandler(t *testing.T) {
	s := newServer(t, nil)

	expired, err := handler.IssueToken(secret, "u1", false, -time.Minute)
	require.NoError(t, err)
	forged, err := handler.IssueToken([]byte("other-secret"), "u1", true, time.Hour)
	require.NoError(t, err)

	for name, header := range map[string]string{
		"expired": "Bearer " + expired,
		"forged":  "Bearer " + forged,
		"garbage": "Bearer abc.def.ghi",
		"scheme":  "Basic dTE6cGFzcw==",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/wallet", nil)
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()
			s.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "authentication required", decode[errorBody](t, rec).Message)
		})
	}

	t.Run("Anonymous", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/products", "", "").Code)
		assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/products", "abc.def.ghi", "").Code,
			"public routes ignore the token")
	})
}

func TestServerErrors(t *testing.T) {
	s := newServer(t, nil)
	admin := token(t, "admin", true)

	rec := s.do(t, http.MethodGet, "/api/unknown", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, errorBody{Code: http.StatusNotFound, Message: "not found"}, decode[errorBody](t, rec))

	rec = s.do(t, http.MethodPatch, "/api/products", admin, "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/wallet/deposit", strings.NewReader(`{"amount":1}`))
	req.Header.Set("Authorization", "Bearer "+token(t, "u1", false))
	req.Header.Set("Content-Type", "text/plain")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	event := s.reporter.last(t)
	assert.Equal(t, failure.KindValidation, event.Kind)
	assert.Equal(t, "depositToWallet", event.Operation)
	assert.Equal(t, "u1", event.UserID)
}

func TestRateLimitKey(t *testing.T) {
	sec := handler.NewSecurityHandler(secret)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.1.2.3:5555"
	assert.Equal(t, "ip:10.1.2.3", sec.RateLimitKey(req))

	req.Header.Set("Authorization", "Bearer abc.def.ghi")
	assert.Equal(t, "ip:10.1.2.3", sec.RateLimitKey(req), "invalid token")

	req.Header.Set("Authorization", "Bearer "+token(t, "u1", false))
	assert.Equal(t, "user:u1", sec.RateLimitKey(req))
}
