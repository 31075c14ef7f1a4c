package entraid

// TenantProvider supplies per-tenant OAuth client configuration. Implementations
// may be backed by static options or by dynamic lookup (multi-tenant apps that
// resolve configuration per request).
//
// Every accessor except ClientID is optional: returning the zero value means
// the capability is absent and the documented default applies. ClientSecret
// and CertificatePath select the credential; when both are non-empty the
// secret wins.
type TenantProvider interface {
	// ClientID returns the OAuth client (application) id. Required.
	ClientID() string

	// ClientSecret returns the shared client secret, if configured.
	ClientSecret() string

	// CertificatePath returns the path to a PKCS#12 certificate bundle used
	// for client-assertion authentication, if configured.
	CertificatePath() string

	// TenantID returns the directory tenant id. Defaults to "common".
	TenantID() string

	// BaseURL returns the login host. Defaults to the Microsoft public cloud
	// host, https://login.microsoftonline.com.
	BaseURL() string

	// TenantName returns the B2C tenant name, used together with CustomPolicy
	// to build b2clogin.com endpoints.
	TenantName() string

	// CustomPolicy returns the B2C custom policy name, if any.
	CustomPolicy() string

	// DomainHint returns the domain_hint authorize parameter, if any.
	DomainHint() string

	// Scope returns the OAuth scope string, if any.
	Scope() string

	// AuthorizeParams returns additional authorization request parameters.
	AuthorizeParams() map[string]string

	// ADFS reports whether the tenant is an on-premises ADFS deployment,
	// which uses the legacy oauth2 endpoint path instead of oauth2/v2.0.
	ADFS() bool
}

// TenantOptions is a static TenantProvider backed by plain fields. Zero-value
// fields fall back to the defaults documented on TenantProvider.
type TenantOptions struct {
	ID              string
	Secret          string
	CertPath        string
	Tenant          string
	LoginBaseURL    string
	B2CTenantName   string
	Policy          string
	Hint            string
	Scopes          string
	ExtraAuthParams map[string]string
	IsADFS          bool
}

func (o *TenantOptions) ClientID() string                   { return o.ID }
func (o *TenantOptions) ClientSecret() string               { return o.Secret }
func (o *TenantOptions) CertificatePath() string            { return o.CertPath }
func (o *TenantOptions) TenantID() string                   { return o.Tenant }
func (o *TenantOptions) BaseURL() string                    { return o.LoginBaseURL }
func (o *TenantOptions) TenantName() string                 { return o.B2CTenantName }
func (o *TenantOptions) CustomPolicy() string               { return o.Policy }
func (o *TenantOptions) DomainHint() string                 { return o.Hint }
func (o *TenantOptions) Scope() string                      { return o.Scopes }
func (o *TenantOptions) AuthorizeParams() map[string]string { return o.ExtraAuthParams }
func (o *TenantOptions) ADFS() bool                         { return o.IsADFS }
