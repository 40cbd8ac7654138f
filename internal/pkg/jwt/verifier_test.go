package jwt

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const (
	testIssuer   = "identity-provider"
	testAudience = "humsafar"
)

func signTestToken(t *testing.T, key *rsa.PrivateKey, claims *Claims) string {
	t.Helper()
	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodRS256, claims)
	s, err := tok.SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func testClaims(sub string, staff bool) *Claims {
	return &Claims{
		Username: "asif",
		IsStaff:  staff,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   sub,
			Issuer:    testIssuer,
			Audience:  jwtlib.ClaimStrings{testAudience},
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}
}

func TestVerify(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	v := NewVerifier(&key.PublicKey, testIssuer, testAudience)

	token := signTestToken(t, key, testClaims("idn-42", true))
	claims, err := v.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "idn-42" {
		t.Errorf("subject = %q, want idn-42", claims.Subject)
	}
	if !claims.IsStaff {
		t.Error("staff flag lost in verification")
	}
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	v := NewVerifier(&key.PublicKey, testIssuer, testAudience)

	c := testClaims("idn-42", false)
	c.Issuer = "someone-else"
	if _, err := v.Verify(signTestToken(t, key, c)); err == nil {
		t.Error("expected error for wrong issuer")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	v := NewVerifier(&other.PublicKey, testIssuer, testAudience)

	if _, err := v.Verify(signTestToken(t, key, testClaims("idn-42", false))); err == nil {
		t.Error("expected error for token signed with a different key")
	}
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	v := NewVerifier(&key.PublicKey, testIssuer, testAudience)

	if _, err := v.Verify(signTestToken(t, key, testClaims("", false))); err == nil {
		t.Error("expected error for empty subject")
	}
}
