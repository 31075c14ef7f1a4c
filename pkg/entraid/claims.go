package entraid

import (
	"github.com/golang-jwt/jwt/v5"
)

// decodeClaims decodes a JWT payload without verifying its signature. A
// malformed token yields an empty claim map alongside the decode error: some
// Microsoft account types issue access tokens that are not JWTs at all, and
// those simply contribute no claims. The error is informational, for
// diagnostics only.
func decodeClaims(tokenString string) (jwt.MapClaims, error) {
	if tokenString == "" {
		return jwt.MapClaims{}, nil
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return jwt.MapClaims{}, err
	}
	return claims, nil
}

// mergeClaims overlays the access-token claims onto the ID-token claims.
// Access-token values win on collision: the access token can carry richer,
// provider-refreshed claims than the ID token.
func mergeClaims(idClaims, accessClaims jwt.MapClaims) jwt.MapClaims {
	merged := make(jwt.MapClaims, len(idClaims)+len(accessClaims))
	for k, v := range idClaims {
		merged[k] = v
	}
	for k, v := range accessClaims {
		merged[k] = v
	}
	return merged
}
