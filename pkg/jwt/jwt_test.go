package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/seojacky/account-teacher/config"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-key-for-unit-testing-2026",
		AccessTokenTTL: ttl,
	})
}

func int64Ptr(v int64) *int64 { return &v }

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	token, err := m.GenerateAccessToken(42, "zaviduvach", int64Ptr(2), int64Ptr(3))
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", claims.UserID)
	}
	if claims.Role != "zaviduvach" {
		t.Errorf("expected Role=zaviduvach, got %s", claims.Role)
	}
	if claims.FacultyID == nil || *claims.FacultyID != 2 {
		t.Errorf("expected FacultyID=2, got %v", claims.FacultyID)
	}
	if claims.DepartmentID == nil || *claims.DepartmentID != 3 {
		t.Errorf("expected DepartmentID=3, got %v", claims.DepartmentID)
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI must not be empty")
	}
}

func TestParseToken_NilScope(t *testing.T) {
	m := newTestManager(time.Minute)

	token, _ := m.GenerateAccessToken(1, "admin", nil, nil)
	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if claims.FacultyID != nil || claims.DepartmentID != nil {
		t.Error("admin without org scope should keep nil ids")
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := newTestManager(-time.Minute)

	token, err := m.GenerateAccessToken(1, "admin", nil, nil)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := m.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager(time.Minute)
	other := NewManager(&config.AuthConfig{JWTSecret: "another-secret-of-enough-length", AccessTokenTTL: time.Minute})

	token, _ := other.GenerateAccessToken(1, "admin", nil, nil)
	if _, err := m.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := newTestManager(time.Minute)
	if _, err := m.ParseToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}
