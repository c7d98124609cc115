// Copyright (c) 2025 the hushboard authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestGenerateIdentityToken(t *testing.T) {
	token, err := GenerateIdentityToken()
	if err != nil {
		t.Fatalf("GenerateIdentityToken() error = %v", err)
	}

	if token == "" {
		t.Error("GenerateIdentityToken() returned empty string")
	}

	// Should be URL-safe (no padding)
	if strings.ContainsAny(token, "=+/") {
		t.Errorf("GenerateIdentityToken() contains non-URL-safe chars: %s", token)
	}

	// 20 bytes base64 without padding
	if len(token) != 27 {
		t.Errorf("GenerateIdentityToken() length = %d, want 27", len(token))
	}

	// Test randomness - should not produce duplicates
	tokens := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateIdentityToken()
		if err != nil {
			t.Fatalf("GenerateIdentityToken() error on iteration %d: %v", i, err)
		}
		if tokens[token] {
			t.Errorf("GenerateIdentityToken() produced duplicate token: %s", token)
		}
		tokens[token] = true
	}
}

func TestGenerateSessionToken(t *testing.T) {
	token, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("GenerateSessionToken() error = %v", err)
	}

	if token == "" {
		t.Error("GenerateSessionToken() returned empty string")
	}

	// Should be lowercase base32 without padding
	if strings.Contains(token, "=") {
		t.Error("GenerateSessionToken() contains padding characters")
	}
	for _, c := range token {
		if !((c >= 'a' && c <= 'z') || (c >= '2' && c <= '7')) {
			t.Errorf("GenerateSessionToken() contains invalid base32 char: %c", c)
		}
	}

	// 20 bytes base32 without padding
	if len(token) != 32 {
		t.Errorf("GenerateSessionToken() length = %d, want 32", len(token))
	}

	// Test randomness
	other, _ := GenerateSessionToken()
	if token == other {
		t.Error("GenerateSessionToken() produced duplicate tokens (extremely unlikely)")
	}
}

func TestSessionIDFromToken(t *testing.T) {
	id := SessionIDFromToken("some-token")

	// Should be 64 hex characters (sha256)
	if len(id) != 64 {
		t.Errorf("SessionIDFromToken() length = %d, want 64", len(id))
	}
	for _, c := range id {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			t.Errorf("SessionIDFromToken() contains invalid hex char: %c", c)
		}
	}

	// Should be deterministic
	if id != SessionIDFromToken("some-token") {
		t.Error("SessionIDFromToken() is not deterministic")
	}

	// Different tokens should produce different ids
	if id == SessionIDFromToken("other-token") {
		t.Error("SessionIDFromToken() produced same id for different tokens")
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid", "quiet_owl", false},
		{"valid with hyphen", "night-walker", false},
		{"valid digits", "user42", false},
		{"minimum length", "ab", false},
		{"maximum length", strings.Repeat("a", 30), false},
		{"too short", "a", true},
		{"too long", strings.Repeat("a", 31), true},
		{"empty", "", true},
		{"spaces inside", "two words", true},
		{"leading space", " padded", true},
		{"trailing space", "padded ", true},
		{"special chars", "user!name", true},
		{"unicode", "héllo", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}
