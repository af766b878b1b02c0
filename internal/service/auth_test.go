package service

import (
	"testing"
	"time"

	"github.com/arthverse/finance-service/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

func TestIssueToken_SevenDayExpiry(t *testing.T) {
	svc := &Service{config: &config.Config{JWTSecret: "test-secret"}}

	tokenString, err := svc.issueToken("user-123")
	if err != nil {
		t.Fatalf("issueToken failed: %v", err)
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if !parsed.Valid {
		t.Fatalf("token is not valid")
	}
	if claims.Subject != "user-123" {
		t.Errorf("subject = %q, want user-123", claims.Subject)
	}
	if claims.ExpiresAt == nil {
		t.Fatalf("token has no expiry")
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < tokenLifetime-time.Minute || remaining > tokenLifetime+time.Minute {
		t.Errorf("token lifetime = %v, want about %v", remaining, tokenLifetime)
	}
}
