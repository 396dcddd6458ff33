package crypto

import "testing"

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	const pw = "p@ssw0rd"

	h1, err := HashPassword(pw)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword(pw)
	if err != nil {
		t.Fatalf("HashPassword(2): %v", err)
	}
	if h1 == "" || h2 == "" {
		t.Fatalf("empty hash")
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password are equal, salt is not fresh")
	}
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	const pw = "correct horse battery staple"

	hash, err := HashPassword(pw)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !VerifyPassword(pw, hash) {
		t.Fatalf("VerifyPassword: expected true for correct password")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatalf("VerifyPassword: expected false for wrong password")
	}
	if VerifyPassword("", hash) {
		t.Fatalf("VerifyPassword: expected false for empty password")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	if VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Fatalf("VerifyPassword: expected false for malformed hash")
	}
	if VerifyPassword("anything", "") {
		t.Fatalf("VerifyPassword: expected false for empty hash")
	}
}
