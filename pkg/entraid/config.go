package entraid

import (
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultProviderName is the path segment identifying this strategy in
// callback URLs.
const DefaultProviderName = "entra_id"

// Config contains the strategy configuration. It is read-only after New;
// per-request state lives in a session, so one Strategy serves concurrent
// requests without locking.
type Config struct {
	// Provider supplies the tenant configuration, statically via
	// TenantOptions or dynamically per deployment.
	Provider TenantProvider

	// ProviderName overrides the callback path segment. Defaults to
	// "entra_id".
	ProviderName string

	// RedirectURL is the registered callback URL for the authorization code
	// exchange.
	RedirectURL string

	// Leeway absorbs clock skew on expiry and not-before validation.
	// Defaults to 60 seconds.
	Leeway time.Duration

	// VerifySignature additionally verifies the ID token signature against
	// the tenant's published signing keys before claim validation. Off by
	// default, matching the claims-only validation the strategy has always
	// performed.
	VerifySignature bool

	// LegacyUID projects the bare oid claim as the uid instead of the
	// tid+oid concatenation. Only for consumers with existing records keyed
	// on object ids.
	LegacyUID bool

	// Logger receives configuration warnings and decode diagnostics.
	// Defaults to a no-op logger.
	Logger *zap.Logger

	// Timeout is the HTTP client timeout for token and JWKS requests.
	Timeout time.Duration

	// TLSConfig allows custom TLS configuration.
	TLSConfig *tls.Config

	// InsecureSkipVerify disables TLS certificate verification (not recommended).
	InsecureSkipVerify bool
}

// Validate checks the configuration and applies defaults in place.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfiguration)
	}

	if c.Provider == nil {
		return fmt.Errorf("%w: tenant provider is required", ErrInvalidConfiguration)
	}

	if strings.TrimSpace(c.ProviderName) == "" {
		c.ProviderName = DefaultProviderName
	}

	if c.Leeway <= 0 {
		c.Leeway = DefaultLeeway
	}

	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}

	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	return nil
}
