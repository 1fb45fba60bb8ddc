package password

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)
	hash, err := h.Hash("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatalf("expected hashed value")
	}
	if !h.Verify(hash, "s3cret-pass") {
		t.Fatalf("expected password to verify")
	}
	if h.Verify(hash, "wrong") {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestBcryptHasher_RejectsLongPassword(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)
	if _, err := h.Hash(strings.Repeat("x", 80)); err == nil {
		t.Fatalf("expected error for password longer than 72 bytes")
	}
}
