package impl

import (
	"errors"
	"strings"
	"testing"
)

func TestPasswordHashAndVerify(t *testing.T) {
	svc := NewPasswordServiceArgon2id()

	encoded, err := svc.Hash("password123")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Fatalf("unexpected encoding: %q", encoded)
	}

	if !svc.Verify("password123", encoded) {
		t.Fatalf("correct password should verify")
	}
	if svc.Verify("password124", encoded) {
		t.Fatalf("wrong password should not verify")
	}
}

func TestPasswordHashSaltsAreRandom(t *testing.T) {
	svc := NewPasswordServiceArgon2id()

	a, err := svc.Hash("password123")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	b, err := svc.Hash("password123")
	if err != nil {
		t.Fatalf("hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password should differ")
	}
	if !svc.Verify("password123", a) || !svc.Verify("password123", b) {
		t.Fatalf("both encodings should verify")
	}
}

func TestPasswordHashRejectsEmpty(t *testing.T) {
	svc := NewPasswordServiceArgon2id()
	if _, err := svc.Hash(""); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("expected ErrEmptyPassword, got %v", err)
	}
}

func TestPasswordVerifyMalformedHash(t *testing.T) {
	svc := NewPasswordServiceArgon2id()

	cases := []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=65536,t=3,p=1$notbase64!$alsonot!",
		"$bcrypt$whatever",
		"$argon2id$v=18$m=65536,t=3,p=1$c2FsdA$aGFzaA",
	}
	for _, encoded := range cases {
		if svc.Verify("password123", encoded) {
			t.Fatalf("malformed hash %q must not verify", encoded)
		}
	}
}
