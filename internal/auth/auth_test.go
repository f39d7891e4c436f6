package auth

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func newDirectory(t *testing.T) *Directory {
	t.Helper()

	d, err := NewDirectory(DefaultAccounts(), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("directory: %v", err)
	}
	return d
}

func TestLogin(t *testing.T) {
	d := newDirectory(t)

	u, ok := d.Login("admin", "admin123")
	if !ok || u.Role != RoleAdmin || u.Password != nil {
		t.Fatalf("admin login = %+v %v", u, ok)
	}
	if u, ok = d.Login("user", "user123"); !ok || u.Role != RoleUser {
		t.Fatalf("user login = %+v %v", u, ok)
	}
	if _, ok = d.Login("admin", "user123"); ok {
		t.Fatalf("wrong password accepted")
	}
	if _, ok = d.Login("nobody", "admin123"); ok {
		t.Fatalf("unknown user accepted")
	}
}

func TestResetPassword(t *testing.T) {
	d := newDirectory(t)

	if !d.ResetPassword(" Admin@Example.com ") {
		t.Fatalf("known email not found")
	}
	if d.ResetPassword("ghost@example.com") {
		t.Fatalf("unknown email found")
	}
}

func TestAuthorized(t *testing.T) {
	c := Claims{Role: RoleUser}

	if !c.Authorized() {
		t.Fatalf("no roles should allow any user")
	}
	if c.Authorized(RoleAdmin) {
		t.Fatalf("user authorized as admin")
	}
	if !c.Authorized(RoleAdmin, RoleUser) {
		t.Fatalf("user not authorized for user role")
	}
}

func TestNewRequiresKey(t *testing.T) {
	if _, err := New("", nil, nil); err == nil {
		t.Fatalf("expected missing key error")
	}
}

func TestExpiredTokenIsRejected(t *testing.T) {
	a, err := New("k", nil, nil)
	if err != nil {
		t.Fatalf("auth: %v", err)
	}

	tok, err := a.GenerateToken(NewClaims("1", RoleAdmin, TokenAccess, "x", time.Now().Add(-time.Hour), time.Minute))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err = a.ValidateToken(tok); err == nil {
		t.Fatalf("expired token accepted")
	}
}

func TestMemorySessionsExpire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	m := NewMemorySessions()
	m.now = func() time.Time { return now }

	if err := m.Save(ctx, "s1", time.Minute); err != nil {
		t.Fatalf("save: %v", err)
	}
	if ok, _ := m.Exists(ctx, "s1"); !ok {
		t.Fatalf("fresh session missing")
	}

	now = now.Add(2 * time.Minute)
	if ok, _ := m.Exists(ctx, "s1"); ok {
		t.Fatalf("expired session still valid")
	}

	m.Save(ctx, "s2", time.Minute)
	if ok, _ := m.Revoke(ctx, "s2"); !ok {
		t.Fatalf("revoking a live session reported false")
	}
	if ok, _ := m.Exists(ctx, "s2"); ok {
		t.Fatalf("revoked session still valid")
	}
	if ok, _ := m.Revoke(ctx, "s2"); ok {
		t.Fatalf("second revoke reported true")
	}
	if ok, _ := m.Revoke(ctx, "s1"); ok {
		t.Fatalf("revoking an expired session reported true")
	}
}

func TestClaimsFromContext(t *testing.T) {
	if _, err := ClaimsFromContext(context.Background()); err == nil {
		t.Fatalf("expected error without claims")
	}

	ctx := context.WithValue(context.Background(), Key, Claims{UserID: "2", Role: RoleUser})
	if _, err := ClaimsFromContext(ctx, RoleAdmin); err == nil {
		t.Fatalf("user passed an admin check")
	}
	if c, err := ClaimsFromContext(ctx); err != nil || c.UserID != "2" {
		t.Fatalf("claims = %+v, err = %v", c, err)
	}
}
