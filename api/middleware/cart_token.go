package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/nextplayhq/nextplay-backend/pkg/logger"
)

const cartTokenHeader = "X-Cart-Token"

type contextKey string

const ctxCartToken contextKey = "cart_token"

// CartToken resolves the client's cart identity. A valid UUID in X-Cart-Token is
// reused; anything else gets a fresh token. The token is always echoed back so
// the client can persist it.
func CartToken(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(cartTokenHeader)
			if _, err := uuid.Parse(token); err != nil {
				token = uuid.NewString()
			}

			w.Header().Set(cartTokenHeader, token)

			ctx := context.WithValue(r.Context(), ctxCartToken, token)
			if logg != nil {
				ctx = logg.WithCartToken(ctx, token)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CartTokenFromContext returns the resolved cart token, or "" outside the middleware.
func CartTokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxCartToken).(string); ok {
		return v
	}
	return ""
}

// WithCartToken injects a cart token into the context. Used by tests.
func WithCartToken(ctx context.Context, token string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxCartToken, token)
}
