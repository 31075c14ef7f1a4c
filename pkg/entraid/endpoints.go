package entraid

import "fmt"

// EndpointSet holds the authorization and token endpoint URLs derived from a
// resolved tenant. Building it is pure: identical tenants always yield
// identical URLs.
type EndpointSet struct {
	AuthorizeURL string
	TokenURL     string
}

// Endpoints derives the OAuth endpoints for the tenant.
//
// ADFS deployments use the legacy "oauth2" path segment instead of
// "oauth2/v2.0". When both a custom policy and a B2C tenant name are present
// the endpoints live on the b2clogin.com host; a custom policy alone is
// appended to the regular tenant path.
func (t *ResolvedTenant) Endpoints() EndpointSet {
	segment := "oauth2/v2.0"
	if t.ADFS {
		segment = "oauth2"
	}

	var base string
	switch {
	case t.CustomPolicy != "" && t.TenantName != "":
		base = fmt.Sprintf("https://%s.b2clogin.com/%s.onmicrosoft.com/%s",
			t.TenantName, t.TenantName, t.CustomPolicy)
	case t.CustomPolicy != "":
		base = fmt.Sprintf("%s/%s/%s", t.BaseURL, t.TenantID, t.CustomPolicy)
	default:
		base = fmt.Sprintf("%s/%s", t.BaseURL, t.TenantID)
	}

	return EndpointSet{
		AuthorizeURL: fmt.Sprintf("%s/%s/authorize", base, segment),
		TokenURL:     fmt.Sprintf("%s/%s/token", base, segment),
	}
}
