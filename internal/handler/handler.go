// Package handler exposes the shop over HTTP. Handlers only translate between
// the generated API types and the domain services; every state change happens
// inside the services' units of work.
package handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	ht "github.com/ogen-go/ogen/http"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/shopspring/decimal"

	"github.com/xenking/shop-ledger/gen/oas"
	"github.com/xenking/shop-ledger/internal/domain/order"
	"github.com/xenking/shop-ledger/internal/domain/product"
	"github.com/xenking/shop-ledger/internal/domain/wallet"
	"github.com/xenking/shop-ledger/internal/failure"
	"github.com/xenking/shop-ledger/pkg/httpmiddleware"
)

// Compile-time check ensuring Handler satisfies the ogen Handler interface.
var _ oas.Handler = (*Handler)(nil)

// Handler implements the ogen-generated Handler interface on top of the
// catalog, the ledger and the order service.
type Handler struct {
	oas.UnimplementedHandler

	catalog  *product.Catalog
	ledger   *wallet.Ledger
	orders   *order.Service
	reporter failure.Reporter
}

// New creates a Handler. Errors surfaced to clients are sent to reporter.
func New(
	catalog *product.Catalog,
	ledger *wallet.Ledger,
	orders *order.Service,
	reporter failure.Reporter,
) *Handler {
	return &Handler{
		catalog:  catalog,
		ledger:   ledger,
		orders:   orders,
		reporter: reporter,
	}
}

var (
	errUnauthenticated = errors.New("authentication required")
	errForbidden       = errors.New("admin role required")
	errMalformedMoney  = errors.New("amount must be a decimal number")
)

// opError names the operation that failed for the failure report.
type opError struct {
	op  string
	err error
}

func (e *opError) Error() string { return e.op + ": " + e.err.Error() }

func (e *opError) Unwrap() error { return e.err }

func failed(op string, err error) error {
	return &opError{op: op, err: err}
}

func caller(ctx context.Context) (Identity, error) {
	id, ok := IdentityFromContext(ctx)
	if !ok {
		return Identity{}, errUnauthenticated
	}
	return id, nil
}

func admin(ctx context.Context) (Identity, error) {
	id, err := caller(ctx)
	if err != nil {
		return id, err
	}
	if !id.Admin {
		return id, errForbidden
	}
	return id, nil
}

// money converts a request amount. Numbers are parsed through their shortest
// float representation, so literals with up to 15 significant digits keep
// their exact value.
func money(m oas.Money) (decimal.Decimal, error) {
	switch m.Type {
	case oas.StringMoney:
		d, err := decimal.NewFromString(m.String)
		if err != nil {
			return decimal.Zero, errors.Wrapf(errMalformedMoney, "%q", m.String)
		}
		return d, nil
	case oas.Float64Money:
		return decimal.NewFromFloat(m.Float64), nil
	default:
		return decimal.Zero, errMalformedMoney
	}
}

var statusByKind = map[failure.Kind]int{
	failure.KindValidation:   http.StatusBadRequest,
	failure.KindNotFound:     http.StatusNotFound,
	failure.KindBusinessRule: http.StatusUnprocessableEntity,
	failure.KindExhausted:    http.StatusServiceUnavailable,
	failure.KindInternal:     http.StatusInternalServerError,
}

func errorResponse(status int, message string) *oas.ErrorStatusCode {
	return &oas.ErrorStatusCode{
		StatusCode: status,
		Response:   oas.Error{Code: status, Message: message},
	}
}

// NewError maps err to the error response and reports it. Internal errors
// are not echoed to the client.
func (h *Handler) NewError(ctx context.Context, err error) *oas.ErrorStatusCode {
	var (
		secErr   *ogenerrors.SecurityError
		reqErr   *ogenerrors.DecodeRequestError
		paramErr *ogenerrors.DecodeParamsError
	)
	switch {
	case errors.As(err, &secErr), errors.Is(err, errUnauthenticated):
		return errorResponse(http.StatusUnauthorized, errUnauthenticated.Error())
	case errors.Is(err, errForbidden):
		return errorResponse(http.StatusForbidden, errForbidden.Error())
	}

	op, cause := "", err
	var opErr *opError
	kind := failure.Classify(err)
	switch {
	case errors.As(err, &reqErr):
		op, cause, kind = reqErr.ID, reqErr.Err, failure.KindValidation
	case errors.As(err, &paramErr):
		op, cause, kind = paramErr.ID, paramErr.Err, failure.KindValidation
	case errors.As(err, &opErr):
		op, cause = opErr.op, opErr.err
	}
	if errors.Is(err, errMalformedMoney) {
		kind = failure.KindValidation
	}

	message := cause.Error()
	switch kind {
	case failure.KindValidation:
		if reqErr != nil || paramErr != nil {
			message = "invalid request: " + message
		}
	case failure.KindExhausted:
		message = "too much contention, try again"
	case failure.KindInternal:
		message = "internal server error"
	}

	// A canceled request has no client left to answer.
	if !errors.Is(err, context.Canceled) {
		event := failure.Event{
			Kind:      kind,
			Operation: op,
			Message:   message,
			RequestID: httpmiddleware.RequestIDFromContext(ctx),
			Err:       err,
		}
		if id, ok := IdentityFromContext(ctx); ok {
			event.UserID = id.UserID
		}
		h.reporter.Report(ctx, event)
	}
	return errorResponse(statusByKind[kind], message)
}

// HandleError writes errors raised by the generated server before a handler
// method runs, such as undecodable requests.
func (h *Handler) HandleError(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	if errors.Is(err, ht.ErrNotImplemented) {
		httpmiddleware.WriteError(w, http.StatusNotImplemented, "not implemented")
		return
	}
	resp := h.NewError(ctx, err)
	httpmiddleware.WriteError(w, resp.StatusCode, resp.Response.Message)
}

// NotFound answers requests to paths the API does not serve.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	httpmiddleware.WriteError(w, http.StatusNotFound, "not found")
}
