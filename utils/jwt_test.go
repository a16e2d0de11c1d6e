package utils

import (
	"testing"
	"time"

	"hudumahub/config"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig.JWTSecret = "round-trip-secret"
	defer func() { config.AppConfig.JWTSecret = "" }()

	token, err := GenerateToken("provider-9", "otieno@example.com", "provider", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	subject, role, err := ExtractClaimsFromToken(token)
	if err != nil {
		t.Fatalf("ExtractClaimsFromToken failed: %v", err)
	}
	if subject != "provider-9" || role != "provider" {
		t.Errorf("claims = (%s, %s), want (provider-9, provider)", subject, role)
	}
}

func TestTokenRejectedAfterSecretRotation(t *testing.T) {
	config.AppConfig.JWTSecret = "old-secret"
	token, err := GenerateToken("user-1", "wanjiku@example.com", "user", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	config.AppConfig.JWTSecret = "new-secret"
	defer func() { config.AppConfig.JWTSecret = "" }()

	if _, _, err := ExtractClaimsFromToken(token); err == nil {
		t.Fatal("token signed under the old secret should fail validation")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "expiry-secret"
	defer func() { config.AppConfig.JWTSecret = "" }()

	token, err := GenerateToken("user-1", "wanjiku@example.com", "user", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if _, _, err := ExtractClaimsFromToken(token); err == nil {
		t.Fatal("expired token should fail validation")
	}
}

func TestHashTokenIsDeterministic(t *testing.T) {
	a, b := HashToken("abc"), HashToken("abc")
	if a != b {
		t.Errorf("HashToken not deterministic: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
	if HashToken("abd") == a {
		t.Error("distinct tokens should hash differently")
	}
}
