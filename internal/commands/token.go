package commands

import (
	"context"
	"time"

	"attendance/dashboard/internal/auth"
	"attendance/dashboard/internal/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSessionRevoked is returned for a refresh token that was signed out or
// already exchanged.
var ErrSessionRevoked = errors.New("session revoked")

type TokenTTL struct {
	Access  time.Duration
	Refresh time.Duration
}

// GenToken issues an access and a refresh token for user and opens a refresh
// session.
func GenToken(ctx context.Context, a *auth.Auth, user entity.User, ttl TokenTTL) (accessToken, refreshToken string, err error) {
	now := time.Now()

	accessToken, err = a.GenerateToken(auth.NewClaims(user.ID, user.Role, auth.TokenAccess, uuid.NewString(), now, ttl.Access))
	if err != nil {
		return "", "", errors.Wrap(err, "access token")
	}

	sessionID := uuid.NewString()
	refreshToken, err = a.GenerateToken(auth.NewClaims(user.ID, user.Role, auth.TokenRefresh, sessionID, now, ttl.Refresh))
	if err != nil {
		return "", "", errors.Wrap(err, "refresh token")
	}

	if err = a.Sessions.Save(ctx, sessionID, ttl.Refresh); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// VerifyTokens validates a refresh token and consumes its session, so each
// refresh token can be exchanged once even when requests race.
func VerifyTokens(ctx context.Context, a *auth.Auth, refreshToken string) (auth.Claims, error) {
	claims, err := a.ParseToken(refreshToken, auth.TokenRefresh)
	if err != nil {
		return auth.Claims{}, err
	}

	ok, err := a.Sessions.Revoke(ctx, claims.Id)
	if err != nil {
		return auth.Claims{}, err
	}
	if !ok {
		return auth.Claims{}, ErrSessionRevoked
	}

	return claims, nil
}

// SignOut closes the session of refreshToken. Unknown or expired sessions are
// ignored.
func SignOut(ctx context.Context, a *auth.Auth, refreshToken string) error {
	claims, err := a.ParseToken(refreshToken, auth.TokenRefresh)
	if err != nil {
		return err
	}
	_, err = a.Sessions.Revoke(ctx, claims.Id)
	return err
}
