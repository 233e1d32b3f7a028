package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/shop-ledger/gen/oas"
	"github.com/xenking/shop-ledger/pkg/httpmiddleware"
)

// Compile-time check ensuring SecurityHandler satisfies the ogen interface.
var _ oas.SecurityHandler = (*SecurityHandler)(nil)

// SecurityHandler implements ogen's SecurityHandler interface, resolving
// HS256 bearer tokens into the caller Identity.
type SecurityHandler struct {
	secret []byte
}

// NewSecurityHandler creates a SecurityHandler verifying tokens with secret.
func NewSecurityHandler(secret []byte) *SecurityHandler {
	return &SecurityHandler{secret: secret}
}

// HandleBearerAuth verifies the token and stores the caller in the context.
func (s *SecurityHandler) HandleBearerAuth(ctx context.Context, op oas.OperationName, t oas.BearerAuth) (context.Context, error) {
	id, err := parseToken(strings.TrimSpace(t.Token), s.secret)
	if err != nil {
		zctx.From(ctx).Debug("Token rejected", zap.String("operation", op), zap.Error(err))
		return ctx, err
	}
	return WithIdentity(ctx, id), nil
}

// RateLimitKey counts callers with a valid token by user id and everyone else
// by client address. It runs before the API server, so it verifies the token
// itself.
func (s *SecurityHandler) RateLimitKey(r *http.Request) string {
	if raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		if id, err := parseToken(strings.TrimSpace(raw), s.secret); err == nil {
			return "user:" + id.UserID
		}
	}
	return "ip:" + httpmiddleware.ClientIP(r)
}
