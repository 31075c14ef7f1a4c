package entraid

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	// BaseURL is the Microsoft public cloud login host, used when the tenant
	// provider does not supply its own (e.g. sovereign clouds).
	BaseURL = "https://login.microsoftonline.com"

	// DefaultTenantID accepts sign-ins from any tenant (multi-tenant app).
	DefaultTenantID = "common"

	// DefaultScope is requested when neither the inbound request nor the
	// tenant provider specifies a scope.
	DefaultScope = "openid profile email"
)

// Credential identifies how the client authenticates to the token endpoint.
// Exactly one concrete variant is carried by a ResolvedTenant.
type Credential interface {
	credential()
}

// SharedSecret authenticates with a client secret.
type SharedSecret struct {
	Value string
}

// CertificateAssertion authenticates with a signed JWT assertion built from
// the certificate bundle at Path.
type CertificateAssertion struct {
	Path string
}

func (SharedSecret) credential()         {}
func (CertificateAssertion) credential() {}

// RequestParams carries the inbound authorization request's query parameters
// that may override tenant configuration. Empty fields mean the parameter was
// not present on the request.
type RequestParams struct {
	Prompt string
	Scope  string
}

// ResolvedTenant is the normalized tenant configuration for one
// authentication attempt. It is immutable once resolved.
type ResolvedTenant struct {
	ClientID        string
	Credential      Credential
	TenantID        string
	BaseURL         string
	TenantName      string
	CustomPolicy    string
	ADFS            bool
	Scope           string
	AuthorizeParams map[string]string
}

// resolveTenant normalizes a TenantProvider and the inbound request overrides
// into a ResolvedTenant. It fails when no credential is resolvable.
func resolveTenant(provider TenantProvider, req RequestParams, logger *zap.Logger) (*ResolvedTenant, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: tenant provider is nil", ErrInvalidConfiguration)
	}

	clientID := strings.TrimSpace(provider.ClientID())
	if clientID == "" {
		return nil, fmt.Errorf("%w: client_id is required", ErrInvalidConfiguration)
	}

	tenant := &ResolvedTenant{
		ClientID:        clientID,
		TenantID:        provider.TenantID(),
		BaseURL:         provider.BaseURL(),
		TenantName:      provider.TenantName(),
		CustomPolicy:    provider.CustomPolicy(),
		ADFS:            provider.ADFS(),
		AuthorizeParams: make(map[string]string),
	}

	if tenant.TenantID == "" {
		tenant.TenantID = DefaultTenantID
	}
	if tenant.BaseURL == "" {
		tenant.BaseURL = BaseURL
	}

	// Credential selection: a non-empty secret wins over a certificate. The
	// certificate path additionally requires an explicit tenant id because
	// the assertion audience is tenant-scoped.
	secret := provider.ClientSecret()
	certPath := provider.CertificatePath()
	switch {
	case secret != "":
		if certPath != "" {
			logger.Warn("both client_secret and certificate_path configured, using client_secret",
				zap.String("client_id", clientID))
		}
		tenant.Credential = SharedSecret{Value: secret}
	case certPath != "" && provider.TenantID() != "":
		tenant.Credential = CertificateAssertion{Path: certPath}
	default:
		return nil, fmt.Errorf("%w: provide either client_secret or certificate_path and tenant_id", ErrMissingCredential)
	}

	// Authorize parameters layer set-if-present: provider params first, then
	// domain_hint, then the request's prompt override.
	for k, v := range provider.AuthorizeParams() {
		tenant.AuthorizeParams[k] = v
	}
	if hint := provider.DomainHint(); hint != "" {
		tenant.AuthorizeParams["domain_hint"] = hint
	}
	if req.Prompt != "" {
		tenant.AuthorizeParams["prompt"] = req.Prompt
	}

	// Scope precedence: request override, then provider, then default.
	switch {
	case req.Scope != "":
		tenant.Scope = req.Scope
	case provider.Scope() != "":
		tenant.Scope = provider.Scope()
	default:
		tenant.Scope = DefaultScope
	}

	return tenant, nil
}

// Issuer returns the expected iss claim for tokens issued by this tenant, or
// the empty string for the multi-tenant "common" pseudo-tenant, whose issuer
// depends on the tid inside each token and cannot be known ahead of time.
func (t *ResolvedTenant) Issuer() string {
	if t.TenantID == DefaultTenantID {
		return ""
	}
	return fmt.Sprintf("%s/%s/v2.0", t.BaseURL, t.TenantID)
}

// JWKSURL returns the tenant-scoped signing key discovery endpoint.
func (t *ResolvedTenant) JWKSURL() string {
	return fmt.Sprintf("%s/%s/discovery/v2.0/keys", t.BaseURL, t.TenantID)
}
