package auth

import (
	"log"
	"net/http"

	"attendance/dashboard/foundation/web"
	"attendance/dashboard/internal/auth"
	"attendance/dashboard/internal/commands"

	"github.com/pkg/errors"
)

type Controller struct {
	auth  *auth.Auth
	users Users
	ttl   commands.TokenTTL
}

func NewController(a *auth.Auth, users Users, ttl commands.TokenTTL) *Controller {
	return &Controller{auth: a, users: users, ttl: ttl}
}

func (uc Controller) SignIn(c *web.Context) error {
	var data SignInRequest

	if err := c.BindFunc(&data, "Username", "Password"); err != nil {
		return c.RespondError(err)
	}

	user, ok := uc.users.Login(data.Username, data.Password)
	if !ok {
		return c.RespondError(web.NewRequestError(errors.New("incorrect username or password"), http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := commands.GenToken(c.Ctx, uc.auth, user, uc.ttl)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]interface{}{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
			"user":          user,
		},
	}, http.StatusOK)
}

// RefreshToken exchanges a refresh token for a new pair. The old refresh
// token stops working.
func (uc Controller) RefreshToken(c *web.Context) error {
	var data RefreshTokenRequest

	if err := c.BindFunc(&data, "RefreshToken"); err != nil {
		return c.RespondError(err)
	}

	claims, err := commands.VerifyTokens(c.Ctx, uc.auth, data.RefreshToken)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	user, ok := uc.users.ByID(claims.UserID)
	if !ok {
		return c.RespondError(web.NewRequestError(errors.New("user no longer exists"), http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := commands.GenToken(c.Ctx, uc.auth, user, uc.ttl)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating new tokens"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
	}, http.StatusOK)
}

func (uc Controller) SignOut(c *web.Context) error {
	var data RefreshTokenRequest

	if err := c.BindFunc(&data, "RefreshToken"); err != nil {
		return c.RespondError(err)
	}

	if err := commands.SignOut(c.Ctx, uc.auth, data.RefreshToken); err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

// ForgotPassword always answers the same way so callers cannot learn which
// emails exist.
func (uc Controller) ForgotPassword(c *web.Context) error {
	var data ForgotPasswordRequest

	if err := c.BindFunc(&data); err != nil {
		return c.RespondError(err)
	}
	if err := c.Validate(&data); err != nil {
		return c.RespondError(err)
	}

	if uc.users.ResetPassword(data.Email) {
		log.Printf("password reset link sent to %s", data.Email)
	}

	return c.Respond(map[string]interface{}{
		"data":   "if the email is registered, a reset link has been sent",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Me(c *web.Context) error {
	claims, err := auth.ClaimsFromContext(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	user, ok := uc.users.ByID(claims.UserID)
	if !ok {
		return c.RespondError(web.NewRequestError(errors.New("user not found"), http.StatusNotFound))
	}

	return c.Respond(map[string]interface{}{
		"data":   user,
		"status": true,
	}, http.StatusOK)
}
