package auth

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	userID := "18c5a4f2d1e/u"

	tok, err := GenerateToken(userID, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	gotUserID, err := GetUserIDFromToken(tok, secret)
	if err != nil {
		t.Fatalf("GetUserIDFromToken error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}

func TestDecode_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	before := time.Now()

	tok, err := GenerateToken("u1", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims := Decode(tok, secret)
	if claims == nil {
		t.Fatalf("Decode returned nil for a valid token")
	}
	if claims.UserID != "u1" {
		t.Fatalf("UserID mismatch: got %q", claims.UserID)
	}

	wantExp := before.Add(time.Hour).Unix()
	if got := claims.ExpiresAt.Unix(); got < wantExp || got > wantExp+2 {
		t.Fatalf("exp claim %d too far from %d", got, wantExp)
	}
}

func TestDecode_MalformedString(t *testing.T) {
	t.Parallel()

	if claims := Decode("not.a.jwt", []byte("k")); claims != nil {
		t.Fatalf("expected nil for malformed token, got %+v", claims)
	}
	if claims := Decode("", []byte("k")); claims != nil {
		t.Fatalf("expected nil for empty token, got %+v", claims)
	}
}

func TestDecode_TamperedSignature(t *testing.T) {
	t.Parallel()

	secret := []byte("right-secret")
	tok, err := GenerateToken("u1", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	parts := strings.Split(tok, ".")
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("x", len(parts[2]))

	if claims := Decode(tampered, secret); claims != nil {
		t.Fatalf("expected nil for tampered signature, got %+v", claims)
	}
	if claims := Decode(tok, []byte("wrong-secret")); claims != nil {
		t.Fatalf("expected nil for wrong secret, got %+v", claims)
	}
}

func TestDecode_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateToken("u1", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if claims := Decode(tok, secret); claims != nil {
		t.Fatalf("expected nil for expired token, got %+v", claims)
	}
}

func TestGetUserIDFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u2", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := GetUserIDFromToken(tok, []byte("wrong-secret")); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestGetUserIDFromToken_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := GetUserIDFromToken("not.a.jwt", []byte("k")); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
