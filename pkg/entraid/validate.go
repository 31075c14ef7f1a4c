package entraid

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultLeeway absorbs clock skew on the expiry and not-before checks.
const DefaultLeeway = 60 * time.Second

// validateIDClaims checks the decoded ID-token payload against the resolved
// tenant and fails fast on the first violated constraint, in order: audience,
// issuer, expiry, not-before.
//
// The issuer check is skipped for the multi-tenant "common" tenant, whose
// issuer depends on the tid inside the token itself.
func validateIDClaims(claims jwt.MapClaims, tenant *ResolvedTenant, leeway time.Duration) error {
	return validateIDClaimsAt(claims, tenant, leeway, time.Now())
}

func validateIDClaimsAt(claims jwt.MapClaims, tenant *ResolvedTenant, leeway time.Duration, now time.Time) error {
	if aud := claimString(claims, "aud"); aud != tenant.ClientID {
		return fmt.Errorf("%w: aud %q does not match client id", ErrInvalidAudience, aud)
	}

	if issuer := tenant.Issuer(); issuer != "" {
		if iss := claimString(claims, "iss"); iss != issuer {
			return fmt.Errorf("%w: iss %q, expected %q", ErrInvalidIssuer, iss, issuer)
		}
	}

	if exp, ok := claimTime(claims, "exp"); ok && exp.Before(now.Add(-leeway)) {
		return fmt.Errorf("%w: expired at %s", ErrExpiredSignature, exp.UTC().Format(time.RFC3339))
	}

	if nbf, ok := claimTime(claims, "nbf"); ok && nbf.After(now.Add(leeway)) {
		return fmt.Errorf("%w: not valid before %s", ErrImmatureSignature, nbf.UTC().Format(time.RFC3339))
	}

	return nil
}

// claimString extracts a string claim, tolerating single-element audience
// lists the way providers sometimes encode aud.
func claimString(claims jwt.MapClaims, name string) string {
	switch v := claims[name].(type) {
	case string:
		return v
	case []interface{}:
		if len(v) == 1 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

// claimTime extracts a NumericDate claim. JSON decoding yields float64; a
// json.Number or int64 may appear when claims are built programmatically.
func claimTime(claims jwt.MapClaims, name string) (time.Time, bool) {
	switch v := claims[name].(type) {
	case float64:
		return time.Unix(int64(v), 0), true
	case int64:
		return time.Unix(v, 0), true
	case int:
		return time.Unix(int64(v), 0), true
	}
	return time.Time{}, false
}
