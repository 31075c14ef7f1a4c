package entraid

import "github.com/golang-jwt/jwt/v5"

// Identity is the normalized identity projection handed to the consumer.
// Absent claims map to empty fields, never placeholder values. RawClaims
// retains the full merged claim set for fields outside the projection.
type Identity struct {
	UID       string
	Name      string
	Email     string
	Nickname  string
	FirstName string
	LastName  string
	RawClaims jwt.MapClaims
}

// projectIdentity maps the merged claim set to an Identity.
//
// The uid concatenates the tid and oid claims: oid alone is only unique
// within a tenant, and sub is only unique per app registration. See
// https://learn.microsoft.com/en-us/entra/identity-platform/migrate-off-email-claim-authorization
func projectIdentity(claims jwt.MapClaims) Identity {
	return Identity{
		UID:       claimString(claims, "tid") + claimString(claims, "oid"),
		Name:      claimString(claims, "name"),
		Email:     emailClaim(claims),
		Nickname:  claimString(claims, "unique_name"),
		FirstName: claimString(claims, "given_name"),
		LastName:  claimString(claims, "family_name"),
		RawClaims: claims,
	}
}

// projectLegacyIdentity is the pre-tid projection kept for consumers keyed on
// bare object ids.
func projectLegacyIdentity(claims jwt.MapClaims) Identity {
	id := projectIdentity(claims)
	id.UID = claimString(claims, "oid")
	return id
}

// emailClaim prefers the explicit email claim, falling back to the
// user-principal-name claim some directory tenants issue instead.
func emailClaim(claims jwt.MapClaims) string {
	if email := claimString(claims, "email"); email != "" {
		return email
	}
	return claimString(claims, "upn")
}
