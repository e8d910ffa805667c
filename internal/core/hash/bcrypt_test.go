package hash

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("longenough1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "longenough1" {
		t.Fatalf("digest must not equal plaintext")
	}

	if !h.Verify("longenough1", digest) {
		t.Fatalf("expected matching password to verify")
	}
	if h.Verify("wrongpassword", digest) {
		t.Fatalf("expected non-matching password to fail")
	}
}

func TestBcryptHasher_SaltedDigests(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, _ := h.Hash("samepassword")
	b, _ := h.Hash("samepassword")
	if a == b {
		t.Fatalf("two digests of the same password should differ (embedded salt)")
	}
	if !h.Verify("samepassword", a) || !h.Verify("samepassword", b) {
		t.Fatalf("both digests should verify")
	}
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$xx$broken"} {
		if h.Verify("anything", digest) {
			t.Fatalf("malformed digest %q must verify as false", digest)
		}
	}
}

func TestNewBcryptHasher_CostClamped(t *testing.T) {
	h := NewBcryptHasher(-5)
	digest, err := h.Hash("longenough1")
	if err != nil {
		t.Fatalf("Hash with clamped cost returned error: %v", err)
	}
	if cost, err := bcrypt.Cost([]byte(digest)); err != nil || cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d (%v)", cost, err)
	}
}
