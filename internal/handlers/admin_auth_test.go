package handlers

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestCredentialsMatchStoredPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	if !credentialsMatch(string(hash), "secret-pass", "fallback") {
		t.Fatal("expected stored password to authenticate")
	}
	if credentialsMatch(string(hash), "wrong-pass", "fallback") {
		t.Fatal("expected wrong password to be rejected")
	}
}

func TestCredentialsMatchFallbackBypassesStored(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	// The configured fallback authenticates even against a non-matching
	// stored credential.
	if !credentialsMatch(string(hash), "fallback", "fallback") {
		t.Fatal("expected fallback password to authenticate")
	}
}

func TestCredentialsMatchNoStoredAdmin(t *testing.T) {
	if !credentialsMatch("", "fallback", "fallback") {
		t.Fatal("expected fallback to authenticate when no admin is stored")
	}
	if credentialsMatch("", "anything", "fallback") {
		t.Fatal("expected rejection when no admin is stored and fallback does not match")
	}
}
