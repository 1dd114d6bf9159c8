package identity

import (
	"testing"

	jwt "github.com/dgrijalva/jwt-go"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestCustomerIDFromNumericSub(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": 42})
	id, err := CustomerID(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected 42, got %d", id)
	}
}

func TestCustomerIDFromStringSub(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "123"})
	id, err := CustomerID(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 123 {
		t.Fatalf("expected 123, got %d", id)
	}
}

func TestCustomerIDFromCustomClaim(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"customerId": 7, "name": "Ana"})
	id, err := CustomerID(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected 7, got %d", id)
	}
}

func TestCustomerIDErrors(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"garbage", "not-a-jwt"},
		{"no id claim", signedToken(t, jwt.MapClaims{"name": "Ana"})},
		{"non-numeric sub", signedToken(t, jwt.MapClaims{"sub": "ana@example.com"})},
		{"zero sub", signedToken(t, jwt.MapClaims{"sub": 0})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if id, err := CustomerID(tc.token); err == nil {
				t.Fatalf("expected an error, got id %d", id)
			}
		})
	}
}
