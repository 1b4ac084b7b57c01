package services

import (
	"errors"
	"testing"
	"time"

	"stockroom/internal/domain"
)

var tokenUser = &domain.User{ID: "u-1", Email: "test@stockroom.test"}

func TestIssueAndParseAccess(t *testing.T) {
	svc := NewTokenService("test-secret", 5*time.Minute, time.Hour)

	tok, err := svc.IssueAccess(tokenUser)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	claims, err := svc.ParseAccess(tok)
	if err != nil {
		t.Fatalf("ParseAccess: %v", err)
	}
	if claims.UserID != tokenUser.ID || claims.Email != tokenUser.Email {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.Kind != "access" {
		t.Fatalf("kind = %q", claims.Kind)
	}
}

func TestIssueRefreshCarriesJTI(t *testing.T) {
	svc := NewTokenService("test-secret", 5*time.Minute, time.Hour)

	tok, jti, exp, err := svc.IssueRefresh(tokenUser)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}
	if jti == "" {
		t.Fatal("empty jti")
	}
	if !exp.After(time.Now()) {
		t.Fatal("expiry not in the future")
	}
	claims, err := svc.ParseRefresh(tok)
	if err != nil {
		t.Fatalf("ParseRefresh: %v", err)
	}
	if claims.ID != jti {
		t.Fatalf("claims jti %q != issued jti %q", claims.ID, jti)
	}
}

func TestTokenKindsDoNotCross(t *testing.T) {
	svc := NewTokenService("test-secret", 5*time.Minute, time.Hour)

	access, _ := svc.IssueAccess(tokenUser)
	if _, err := svc.ParseRefresh(access); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("access parsed as refresh: %v", err)
	}

	refresh, _, _, _ := svc.IssueRefresh(tokenUser)
	if _, err := svc.ParseAccess(refresh); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("refresh parsed as access: %v", err)
	}
}

func TestExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", time.Millisecond, time.Millisecond)

	tok, err := svc.IssueAccess(tokenUser)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := svc.ParseAccess(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestWrongSecret(t *testing.T) {
	a := NewTokenService("secret-a", 5*time.Minute, time.Hour)
	b := NewTokenService("secret-b", 5*time.Minute, time.Hour)

	tok, _ := a.IssueAccess(tokenUser)
	if _, err := b.ParseAccess(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestGarbageTokens(t *testing.T) {
	svc := NewTokenService("test-secret", 5*time.Minute, time.Hour)
	for _, raw := range []string{"", "not.a.token", "eyJhbGciOiJIUzI1NiJ9.bogus"} {
		if _, err := svc.ParseAccess(raw); err == nil {
			t.Fatalf("accepted garbage token %q", raw)
		}
	}
}
