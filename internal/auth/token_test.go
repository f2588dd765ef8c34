package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestIssuer(t *testing.T, opts ...IssuerOption) *Issuer {
	t.Helper()
	iss, err := NewIssuer([]byte("test-secret"), opts...)
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}
	return iss
}

func TestMintAndValidateUserToken(t *testing.T) {
	iss := newTestIssuer(t, WithIssuer("eduportal"))

	token, expiresAt, err := iss.MintUser("alice", 42)
	if err != nil {
		t.Fatalf("MintUser: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expected future expiration, got %v", expiresAt)
	}

	claims, err := iss.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Subject != "user:alice" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.UserID != 42 {
		t.Fatalf("unexpected user_id: %d", claims.UserID)
	}
	if claims.Issuer != "eduportal" {
		t.Fatalf("unexpected issuer: %s", claims.Issuer)
	}
	if !claims.ExpiresAt.Time.Equal(expiresAt) {
		t.Fatalf("encoded expiry %v does not match returned %v", claims.ExpiresAt.Time, expiresAt)
	}

	identity := identityFromClaims(claims)
	if identity.Class != ClassUser || identity.Username != "alice" || identity.UserID != 42 {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestMintAndValidateAdminToken(t *testing.T) {
	iss := newTestIssuer(t)

	token, _, err := iss.MintAdmin("admin")
	if err != nil {
		t.Fatalf("MintAdmin: %v", err)
	}
	claims, err := iss.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Subject != "admin" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.UserID != 0 {
		t.Fatalf("admin token must not carry a user_id, got %d", claims.UserID)
	}

	identity := identityFromClaims(claims)
	if identity.Class != ClassAdmin || identity.Username != "admin" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	current := time.Now()
	iss := newTestIssuer(t,
		WithTTL(30*time.Minute),
		WithClock(func() time.Time { return current }),
	)

	token, _, err := iss.MintUser("alice", 1)
	if err != nil {
		t.Fatalf("MintUser: %v", err)
	}
	if _, err := iss.Validate(token); err != nil {
		t.Fatalf("token should validate before expiry: %v", err)
	}

	current = current.Add(30*time.Minute + time.Second)
	if _, err := iss.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestValidateRejectsForeignKey(t *testing.T) {
	iss := newTestIssuer(t)
	other, err := NewIssuer([]byte("another-secret"))
	if err != nil {
		t.Fatalf("NewIssuer: %v", err)
	}

	token, _, err := other.MintUser("alice", 1)
	if err != nil {
		t.Fatalf("MintUser: %v", err)
	}
	if _, err := iss.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestValidateRejectsMalformedToken(t *testing.T) {
	iss := newTestIssuer(t)
	for _, token := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := iss.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestNewIssuerRequiresSecret(t *testing.T) {
	if _, err := NewIssuer(nil); err == nil {
		t.Fatal("expected error for missing secret")
	}
}

func TestMintRejectsEmptySubject(t *testing.T) {
	iss := newTestIssuer(t)
	if _, _, err := iss.MintAdmin(""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, _, err := iss.MintUser("", 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
