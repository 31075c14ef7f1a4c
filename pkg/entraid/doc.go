// Package entraid authenticates users against Microsoft Entra ID (Azure AD)
// and normalizes the provider's OAuth2 response into a verified identity.
//
// The strategy derives the tenant's authorize and token endpoints from a
// pluggable TenantProvider, performs the authorization-code exchange, merges
// the claims of the ID token and the access token, validates them against
// issuer, audience, expiry and not-before constraints with clock-skew
// tolerance, and projects a normalized Identity.
//
// # Basic usage
//
// Example - client secret credential:
//
//	strategy, err := entraid.New(&entraid.Config{
//	    Provider: &entraid.TenantOptions{
//	        ID:     "your-client-id",
//	        Secret: "your-client-secret",
//	        Tenant: "your-tenant-id",
//	    },
//	    RedirectURL: "https://example.com/auth/entra_id/callback",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Redirect the user to the authorization endpoint.
//	url, err := strategy.AuthCodeURL(state, entraid.RequestParams{})
//
//	// In the callback handler, exchange the code and resolve the identity.
//	identity, _, err := strategy.Authenticate(ctx, code, entraid.RequestParams{})
//	if err != nil {
//	    log.Printf("Authentication failed: %v", err)
//	    return
//	}
//	fmt.Printf("User: %s (%s)\n", identity.Name, identity.Email)
//
// # Certificate credential
//
// Instead of a shared secret, the client can authenticate to the token
// endpoint with a signed JWT assertion built from a PKCS#12 certificate
// bundle. Configure CertPath and Tenant and leave Secret empty; a fresh
// assertion with a unique jti is signed per attempt.
//
//	strategy, err := entraid.New(&entraid.Config{
//	    Provider: &entraid.TenantOptions{
//	        ID:       "your-client-id",
//	        CertPath: "/etc/pki/entra-client.pfx",
//	        Tenant:   "your-tenant-id",
//	    },
//	    RedirectURL: "https://example.com/auth/entra_id/callback",
//	})
//
// # Multi-tenant apps
//
// When no tenant id is configured the strategy uses the "common" endpoints
// and skips issuer validation, since the issuer depends on the tid inside
// each token. The projected uid concatenates the tid and oid claims so that
// users remain unique across tenants.
//
// # Tenant providers
//
// TenantOptions covers static configuration. Implement TenantProvider for
// dynamic per-deployment resolution, B2C custom policies (TenantName plus
// CustomPolicy), sovereign-cloud base URLs, or on-premises ADFS endpoints.
package entraid
