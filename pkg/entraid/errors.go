package entraid

import "errors"

var (
	// ErrInvalidConfiguration indicates the strategy configuration is invalid.
	ErrInvalidConfiguration = errors.New("entraid: invalid configuration")

	// ErrMissingCredential indicates the tenant provider supplies neither a
	// client secret nor a certificate path with a tenant id.
	ErrMissingCredential = errors.New("entraid: missing credential")

	// ErrCredential indicates the client certificate bundle could not be
	// read or parsed.
	ErrCredential = errors.New("entraid: invalid client credential")

	// ErrInvalidAudience indicates the ID token aud claim does not match the
	// configured client id.
	ErrInvalidAudience = errors.New("entraid: invalid audience")

	// ErrInvalidIssuer indicates the ID token iss claim does not match the
	// tenant-scoped issuer.
	ErrInvalidIssuer = errors.New("entraid: invalid issuer")

	// ErrExpiredSignature indicates the ID token exp claim is in the past.
	ErrExpiredSignature = errors.New("entraid: token expired")

	// ErrImmatureSignature indicates the ID token nbf claim is in the future.
	ErrImmatureSignature = errors.New("entraid: token not yet valid")

	// ErrMissingIDToken indicates the token response did not include an
	// id_token parameter.
	ErrMissingIDToken = errors.New("entraid: missing id token")

	// ErrInvalidSignature indicates ID token signature verification against
	// the tenant JWKS failed.
	ErrInvalidSignature = errors.New("entraid: invalid token signature")

	// ErrTokenExchangeFailed indicates the authorization-code exchange failed.
	ErrTokenExchangeFailed = errors.New("entraid: token exchange failed")
)
