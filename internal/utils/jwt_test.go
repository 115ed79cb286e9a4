package utils

import (
	"errors"
	"testing"

	"cms-backend/internal/cmserr"
)

// TestJwtRoundTrip 签发后可解析出原始载荷
func TestJwtRoundTrip(t *testing.T) {
	j := NewJwtUtil("test-secret", 30)

	token, err := j.Generate(7, "admin")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	userID, username, err := j.Parse(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != 7 || username != "admin" {
		t.Errorf("claims = (%d, %q), want (7, admin)", userID, username)
	}
}

// TestJwtParse_WrongSecret 密钥不匹配视为签名错误
func TestJwtParse_WrongSecret(t *testing.T) {
	token, err := NewJwtUtil("secret-a", 30).Generate(1, "u")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	_, _, err = NewJwtUtil("secret-b", 30).Parse(token)
	if !errors.Is(err, cmserr.TokenSignatureError) {
		t.Fatalf("expected TokenSignatureError, got %v", err)
	}
}

// TestJwtParse_Garbage 非法令牌
func TestJwtParse_Garbage(t *testing.T) {
	_, _, err := NewJwtUtil("secret", 30).Parse("not.a.token")
	if !errors.Is(err, cmserr.TokenSignatureError) {
		t.Fatalf("expected TokenSignatureError, got %v", err)
	}
}
