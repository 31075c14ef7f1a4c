package entraid

import (
	"context"
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// signatureVerifier checks ID token signatures against the tenant's published
// signing keys. Claim validation stays with validateIDClaims; this only
// proves the token was signed by the tenant.
type signatureVerifier struct {
	jwks keyfunc.Keyfunc
}

// newSignatureVerifier fetches the tenant JWKS and keeps it refreshed in the
// background.
func newSignatureVerifier(ctx context.Context, jwksURL string) (*signatureVerifier, error) {
	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("%w: fetching jwks %s: %v", ErrInvalidConfiguration, jwksURL, err)
	}
	return &signatureVerifier{jwks: jwks}, nil
}

// verify parses the token with signature verification only.
func (v *signatureVerifier) verify(tokenString string) error {
	if tokenString == "" {
		return ErrMissingIDToken
	}

	token, err := jwt.Parse(tokenString, v.jwks.Keyfunc,
		jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if !token.Valid {
		return ErrInvalidSignature
	}

	return nil
}
