package auth

import (
	"strings"
	"testing"
	"time"
)

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc123", "abc123", false},
		{"case insensitive scheme", "bearer abc123", "abc123", false},
		{"empty header", "", "", true},
		{"missing token", "Bearer ", "", true},
		{"wrong scheme", "Basic abc123", "", true},
		{"no scheme", "abc123", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("token = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewLocalJWTAuth_RequiresSecret(t *testing.T) {
	if _, err := NewLocalJWTAuth("", 0, 0); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestGenerateAndVerifyTokens(t *testing.T) {
	a, err := NewLocalJWTAuth("test-secret", 0, 0)
	if err != nil {
		t.Fatalf("NewLocalJWTAuth: %v", err)
	}

	access, refresh, err := a.GenerateTokens("user-1", "anal@trineo.com", "Team Member")
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}

	user, err := a.VerifyAccessToken(access)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if user.ID != "user-1" || user.Email != "anal@trineo.com" || user.Role != "Team Member" {
		t.Errorf("unexpected user: %+v", user)
	}

	claims, err := a.VerifyRefreshToken(refresh)
	if err != nil {
		t.Fatalf("VerifyRefreshToken: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("refresh UserID = %q, want user-1", claims.UserID)
	}
	if claims.ID == "" {
		t.Error("refresh token should carry a token ID")
	}
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	a, _ := NewLocalJWTAuth("secret-a", 0, 0)
	b, _ := NewLocalJWTAuth("secret-b", 0, 0)

	access, _, err := a.GenerateTokens("user-1", "anal@trineo.com", "Team Member")
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}

	if _, err := b.VerifyAccessToken(access); err == nil {
		t.Fatal("expected verification to fail with wrong secret")
	}
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	a, _ := NewLocalJWTAuth("test-secret", -time.Minute, 0)

	access, _, err := a.GenerateTokens("user-1", "anal@trineo.com", "Team Member")
	if err != nil {
		t.Fatalf("GenerateTokens: %v", err)
	}

	if _, err := a.VerifyAccessToken(access); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(hash, "argon2id$") {
		t.Errorf("unexpected hash format: %q", hash)
	}

	ok, err := VerifyPassword(hash, "correct horse")
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !ok {
		t.Error("expected matching password to verify")
	}

	ok, err = VerifyPassword(hash, "wrong horse")
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if ok {
		t.Error("expected wrong password to fail verification")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, _ := HashPassword("same password")
	h2, _ := HashPassword("same password")
	if h1 == h2 {
		t.Error("expected distinct salts to produce distinct hashes")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	for _, hash := range []string{"", "bcrypt$x$y", "argon2id$only-one-part"} {
		if _, err := VerifyPassword(hash, "whatever"); err == nil {
			t.Errorf("expected error for malformed hash %q", hash)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("short"); err == nil {
		t.Error("expected short password to be rejected")
	}
	if err := ValidatePassword("long enough"); err != nil {
		t.Errorf("expected valid password, got %v", err)
	}
}
