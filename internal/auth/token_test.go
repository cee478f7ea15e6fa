package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/employee-management-api/internal/auth"
	"github.com/employee-management-api/internal/config"
)

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		Key:        "test-signing-key",
		Issuer:     "employee-management-api",
		Audience:   "employee-management-client",
		TTLMinutes: 120,
	}
}

func TestIssueAndVerify(t *testing.T) {
	issuer := auth.NewIssuer(testConfig())

	token, err := issuer.Issue(42, "user@example.com")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}

	if claims.Subject != "42" {
		t.Errorf("expected subject '42', got %q", claims.Subject)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("expected email 'user@example.com', got %q", claims.Email)
	}
	if claims.ID == "" {
		t.Error("expected a unique jti")
	}
}

func TestIssue_UniqueTokenIDs(t *testing.T) {
	issuer := auth.NewIssuer(testConfig())

	first, _ := issuer.Issue(1, "a@example.com")
	second, _ := issuer.Issue(1, "a@example.com")

	c1, err := issuer.Verify(first)
	if err != nil {
		t.Fatalf("failed to verify first token: %v", err)
	}
	c2, err := issuer.Verify(second)
	if err != nil {
		t.Fatalf("failed to verify second token: %v", err)
	}

	if c1.ID == c2.ID {
		t.Error("expected distinct jti per token")
	}
}

func TestIssue_ExpirySetFromConfig(t *testing.T) {
	issuer := auth.NewIssuer(testConfig())

	token, _ := issuer.Issue(1, "a@example.com")
	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime != 120*time.Minute {
		t.Errorf("expected 120 minute lifetime, got %v", lifetime)
	}
}

func TestVerify_Garbage(t *testing.T) {
	issuer := auth.NewIssuer(testConfig())

	_, err := issuer.Verify("not-a-jwt")
	if !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_WrongKey(t *testing.T) {
	issuer := auth.NewIssuer(testConfig())

	otherCfg := testConfig()
	otherCfg.Key = "another-signing-key"
	other := auth.NewIssuer(otherCfg)

	token, _ := other.Issue(1, "a@example.com")
	if _, err := issuer.Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestVerify_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.TTLMinutes = -1
	issuer := auth.NewIssuer(cfg)

	token, _ := issuer.Issue(1, "a@example.com")
	if _, err := issuer.Verify(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestPassword_HashAndVerify(t *testing.T) {
	hash, err := auth.HashPassword("password-123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if hash == "password-123" {
		t.Error("hash must not equal the plain password")
	}
	if !auth.VerifyPassword(hash, "password-123") {
		t.Error("expected verification to succeed for correct password")
	}
	if auth.VerifyPassword(hash, "wrong-password") {
		t.Error("expected verification to fail for wrong password")
	}
}

func TestPassword_DistinctHashes(t *testing.T) {
	first, _ := auth.HashPassword("password-123")
	second, _ := auth.HashPassword("password-123")

	if first == second {
		t.Error("expected salted hashes to differ")
	}
}
