package auth

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("testpass123")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("Expected argon2id encoded hash, got %q", hash)
	}
	if strings.Contains(hash, "testpass123") {
		t.Errorf("Hash contains the raw password")
	}

	if !VerifyPassword(hash, "testpass123") {
		t.Errorf("Expected correct password to verify")
	}
	if VerifyPassword(hash, "wrongpass") {
		t.Errorf("Expected wrong password to fail")
	}
}

func TestHashPasswordUniqueSalts(t *testing.T) {
	first, err := HashPassword("testpass123")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := HashPassword("testpass123")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if first == second {
		t.Errorf("Expected distinct hashes for the same password")
	}
}

func TestHashPasswordEmpty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Errorf("Expected error for empty password")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not a hash", "plaintext"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA"},
		{"truncated", "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA"},
		{"bad base64", "$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if VerifyPassword(tt.hash, "testpass123") {
				t.Errorf("Expected malformed hash to fail verification")
			}
		})
	}
}
