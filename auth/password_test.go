package auth

import (
	"testing"
)

func TestHashPassword_DistinctSalts(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct hashes for the same password, got %q twice", h1)
	}
}

func TestCheckPassword_Roundtrip(t *testing.T) {
	t.Parallel()

	digest, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !CheckPassword("correct horse", digest) {
		t.Fatalf("expected password to verify against its own hash")
	}
	if CheckPassword("wrong horse", digest) {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	t.Parallel()

	if CheckPassword("anything", "not-a-bcrypt-digest") {
		t.Fatalf("expected malformed digest to fail verification")
	}
	if CheckPassword("anything", "") {
		t.Fatalf("expected empty digest to fail verification")
	}
}
