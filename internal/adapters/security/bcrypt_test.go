package security

import "testing"

func TestBcryptHasherRoundTrip(t *testing.T) {
	hasher := NewBcryptHasher(4) // minimum cost, keeps the test fast

	first, err := hasher.Hash("secret-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	second, err := hasher.Hash("secret-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if first == second {
		t.Fatal("equal passwords must not share a hash")
	}

	if err := hasher.Compare(first, "secret-password"); err != nil {
		t.Fatalf("Compare(first): %v", err)
	}
	if err := hasher.Compare(second, "secret-password"); err != nil {
		t.Fatalf("Compare(second): %v", err)
	}
	if err := hasher.Compare(first, "wrong-password"); err == nil {
		t.Fatal("wrong password must not verify")
	}
}

func TestBcryptHasherDefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(0)
	hash, err := hasher.Hash("secret-password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if err := hasher.Compare(hash, "secret-password"); err != nil {
		t.Fatalf("Compare: %v", err)
	}
}
