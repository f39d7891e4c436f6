package middleware

import (
	"context"
	"net/http"
	"strings"

	"attendance/dashboard/foundation/web"
	"attendance/dashboard/internal/auth"

	"github.com/pkg/errors"
)

var errAuthHeader = errors.New("expected authorization header format: Bearer <token>")

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is case insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Authenticate admits requests carrying a valid access token with one of
// role (any role when none is given) and stores the claims under auth.Key.
// A missing or bad token answers 401, a wrong role 403.
func Authenticate(a *auth.Auth, role ...string) web.Middleware {
	return func(handler web.Handler) web.Handler {
		return func(c *web.Context) error {
			token, ok := bearerToken(c.Request.Header.Get("Authorization"))
			if !ok {
				return c.RespondError(web.NewRequestError(errAuthHeader, http.StatusUnauthorized))
			}

			claims, err := a.ValidateToken(token)
			if err != nil {
				return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
			}

			if !claims.Authorized(role...) {
				return c.RespondError(web.NewRequestError(errors.Errorf("role %q is not allowed here", claims.Role), http.StatusForbidden))
			}

			c.Ctx = context.WithValue(c.Ctx, auth.Key, claims)

			return handler(c)
		}
	}
}
