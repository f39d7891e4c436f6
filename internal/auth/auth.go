// Package auth is the mock sign-in collaborator of the dashboard: a fixed
// set of operators, signed tokens and revocable refresh sessions. It has no
// relation to the employee records in the store.
package auth

import (
	"context"
	"net/http"
	"time"

	"attendance/dashboard/foundation/web"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

type ctxKey int

// Key is how request claims are stored and retrieved from a context.
const Key ctxKey = 1

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

// Claims is the token payload.
type Claims struct {
	jwt.StandardClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Type   string `json:"type"`
}

// Authorized reports whether the claims carry one of roles. No roles means
// any signed-in user.
func (c Claims) Authorized(roles ...string) bool {
	if len(roles) == 0 {
		return true
	}
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}

// Auth signs and validates tokens and tracks refresh sessions.
type Auth struct {
	key      []byte
	method   jwt.SigningMethod
	Sessions Sessions
	Users    *Directory
}

func New(key string, sessions Sessions, users *Directory) (*Auth, error) {
	if key == "" {
		return nil, errors.New("missing jwt key")
	}
	if sessions == nil {
		sessions = NewMemorySessions()
	}

	return &Auth{
		key:      []byte(key),
		method:   jwt.SigningMethodHS256,
		Sessions: sessions,
		Users:    users,
	}, nil
}

// GenerateToken signs claims.
func (a *Auth) GenerateToken(claims Claims) (string, error) {
	token := jwt.NewWithClaims(a.method, claims)

	str, err := token.SignedString(a.key)
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}

	return str, nil
}

// ParseToken checks the signature, expiry and type of tokenStr.
func (a *Auth) ParseToken(tokenStr, typ string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != a.method.Alg() {
			return nil, errors.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return a.key, nil
	})
	if err != nil {
		return Claims{}, errors.Wrap(err, "parsing token")
	}
	if !token.Valid {
		return Claims{}, errors.New("invalid token")
	}
	if claims.Type != typ {
		return Claims{}, errors.Errorf("expected %s token", typ)
	}

	return claims, nil
}

// ValidateToken accepts only access tokens.
func (a *Auth) ValidateToken(tokenStr string) (Claims, error) {
	return a.ParseToken(tokenStr, TokenAccess)
}

// NewClaims builds claims of the given type for user expiring after ttl.
func NewClaims(userID, role, typ, id string, now time.Time, ttl time.Duration) Claims {
	return Claims{
		StandardClaims: jwt.StandardClaims{
			Id:        id,
			Subject:   userID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
		UserID: userID,
		Role:   role,
		Type:   typ,
	}
}

// ClaimsFromContext returns the claims Authenticate stored in ctx and checks
// them against roles.
func ClaimsFromContext(ctx context.Context, roles ...string) (Claims, error) {
	claims, ok := ctx.Value(Key).(Claims)
	if !ok {
		return Claims{}, web.NewRequestError(errors.New("claims missing from context"), http.StatusUnauthorized)
	}
	if !claims.Authorized(roles...) {
		return Claims{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusForbidden)
	}
	return claims, nil
}
