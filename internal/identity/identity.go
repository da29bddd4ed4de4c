// Package identity is the access gate: it resolves the bearer credential on
// each request to a user ID and attaches it to the request context. Every
// core operation is scoped to that identity.
package identity

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// TokenSource resolves a credential to the user it was issued for, returning
// uuid.Nil when the credential is unknown. Satisfied by the token table.
type TokenSource interface {
	Lookup(ctx context.Context, token string) (uuid.UUID, error)
}

type contextKey struct{}

var userIDKey contextKey

// FromContext returns the authenticated user's ID attached by the middleware.
func FromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}

// WithUserID attaches a user ID to the context. Exposed for tests that call
// handlers without going through the middleware.
func WithUserID(ctx huma.Context, userID uuid.UUID) huma.Context {
	return huma.WithValue(ctx, userIDKey, userID)
}

// Middleware authenticates every API request. The credential travels either
// as "Authorization: Bearer <token>" or in the x-auth-token header the
// original web client uses.
func Middleware(api huma.API, tokenSource TokenSource, log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := credentialFromHeaders(ctx)
		if token == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing credentials")
			return
		}

		userID, err := tokenSource.Lookup(ctx.Context(), token)
		if err != nil {
			log.WithError(err).Error("Identity.Lookup")
			_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "authentication unavailable")
			return
		}
		if userID == uuid.Nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid credentials")
			return
		}

		next(WithUserID(ctx, userID))
	}
}

func credentialFromHeaders(ctx huma.Context) string {
	authorization := ctx.Header("Authorization")
	if strings.HasPrefix(authorization, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer "))
	}
	return strings.TrimSpace(ctx.Header("x-auth-token"))
}
