package entraid

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestDecodeClaims(t *testing.T) {
	tokenString := createUnsignedTestJWT(t, jwt.MapClaims{
		"oid":   "object-id",
		"email": "user@example.com",
	})

	claims, err := decodeClaims(tokenString)
	if err != nil {
		t.Fatalf("decodeClaims() failed: %v", err)
	}

	if claims["oid"] != "object-id" {
		t.Errorf("Expected oid 'object-id', got %v", claims["oid"])
	}
	if claims["email"] != "user@example.com" {
		t.Errorf("Expected email 'user@example.com', got %v", claims["email"])
	}
}

func TestDecodeClaims_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "opaque token", token: "EwBgA8l6BAAU..."},
		{name: "not enough segments", token: "header.payload"},
		{name: "garbage payload", token: "aaa.bbb.ccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, _ := decodeClaims(tt.token)
			if claims == nil {
				t.Fatal("Expected empty claim map, got nil")
			}
			if len(claims) != 0 {
				t.Errorf("Expected no claims, got %v", claims)
			}
		})
	}
}

func TestMergeClaims_AccessTokenWins(t *testing.T) {
	idClaims := jwt.MapClaims{"oid": "a", "email": "x"}
	accessClaims := jwt.MapClaims{"oid": "b"}

	merged := mergeClaims(idClaims, accessClaims)

	if merged["oid"] != "b" {
		t.Errorf("Expected access-token oid 'b' to win, got %v", merged["oid"])
	}
	if merged["email"] != "x" {
		t.Errorf("Expected email 'x' to survive, got %v", merged["email"])
	}
}

func TestMergeClaims_EmptyAccessToken(t *testing.T) {
	idClaims := jwt.MapClaims{"oid": "a", "tid": "t"}

	merged := mergeClaims(idClaims, jwt.MapClaims{})

	if len(merged) != 2 || merged["oid"] != "a" || merged["tid"] != "t" {
		t.Errorf("Expected id-token claims to pass through, got %v", merged)
	}
}

func TestMergeClaims_DoesNotMutateInputs(t *testing.T) {
	idClaims := jwt.MapClaims{"oid": "a"}
	accessClaims := jwt.MapClaims{"oid": "b"}

	mergeClaims(idClaims, accessClaims)

	if idClaims["oid"] != "a" {
		t.Errorf("Expected id-token claims unchanged, got %v", idClaims["oid"])
	}
}

// createUnsignedTestJWT builds a structurally valid JWT. The strategy decodes
// payloads without signature verification, so an HMAC test signature is fine.
func createUnsignedTestJWT(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte("test-signing-key"))
	if err != nil {
		t.Fatalf("Failed to sign JWT: %v", err)
	}

	return tokenString
}
