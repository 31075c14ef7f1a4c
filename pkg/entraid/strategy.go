package entraid

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// Token carries the result of the authorization-code exchange: the raw access
// token plus the ID token returned alongside it.
type Token struct {
	// AccessToken is the OAuth access token.
	AccessToken string

	// TokenType is the type of token (usually "Bearer").
	TokenType string

	// RefreshToken is used to obtain new access tokens (optional).
	RefreshToken string

	// Expiry is when the access token expires.
	Expiry time.Time

	// IDToken is the OpenID Connect ID token from the token response.
	IDToken string
}

// Strategy turns an Entra ID OAuth2 response into a verified, normalized
// identity. It is immutable after construction and safe for concurrent use;
// per-attempt state lives in request-scoped sessions.
type Strategy struct {
	config     *Config
	httpClient *http.Client

	verifierOnce sync.Once
	verifier     *signatureVerifier
	verifierErr  error
}

// New creates a Strategy with the given configuration.
func New(config *Config) (*Strategy, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Strategy{
		config:     config,
		httpClient: newHTTPClient(config.Timeout, config.TLSConfig, config.InsecureSkipVerify),
	}, nil
}

// Name returns the provider name used in callback paths.
func (s *Strategy) Name() string {
	return s.config.ProviderName
}

// CallbackPath returns the fixed callback path for this strategy.
func (s *Strategy) CallbackPath() string {
	return "/auth/" + s.config.ProviderName + "/callback"
}

// CallbackURL builds the absolute callback URL from the request's full host
// and an optional mount prefix, e.g. "/v1".
func (s *Strategy) CallbackURL(fullHost, mountPrefix string) string {
	return fullHost + mountPrefix + s.CallbackPath()
}

// Resolve normalizes the tenant configuration for one attempt, applying the
// inbound request's prompt and scope overrides.
func (s *Strategy) Resolve(req RequestParams) (*ResolvedTenant, error) {
	return resolveTenant(s.config.Provider, req, s.config.Logger)
}

// AuthCodeURL builds the authorization redirect URL. state should be a random
// string bound to the user's session to prevent CSRF.
func (s *Strategy) AuthCodeURL(state string, req RequestParams) (string, error) {
	tenant, err := s.Resolve(req)
	if err != nil {
		return "", err
	}

	cfg := s.oauthConfig(tenant)

	opts := make([]oauth2.AuthCodeOption, 0, len(tenant.AuthorizeParams))
	for _, k := range sortedKeys(tenant.AuthorizeParams) {
		opts = append(opts, oauth2.SetAuthURLParam(k, tenant.AuthorizeParams[k]))
	}

	return cfg.AuthCodeURL(state, opts...), nil
}

// Exchange trades an authorization code for tokens. On the certificate
// credential path a fresh client assertion is signed and attached to the
// token request.
func (s *Strategy) Exchange(ctx context.Context, code string, req RequestParams) (*Token, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	tenant, err := s.Resolve(req)
	if err != nil {
		return nil, err
	}

	cfg := s.oauthConfig(tenant)

	var opts []oauth2.AuthCodeOption
	switch cred := tenant.Credential.(type) {
	case SharedSecret:
		// Secret travels on the oauth2.Config itself.
	case CertificateAssertion:
		assertion, err := signClientAssertion(tenant.TenantID, tenant.ClientID, cred.Path)
		if err != nil {
			return nil, err
		}
		params := assertion.TokenParams(tenant.TenantID, tenant.ClientID)
		for _, k := range sortedKeys(params) {
			opts = append(opts, oauth2.SetAuthURLParam(k, params[k]))
		}
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	tok, err := cfg.Exchange(ctx, code, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenExchangeFailed, err)
	}

	token := &Token{
		AccessToken:  tok.AccessToken,
		TokenType:    tok.TokenType,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
	}
	if idToken, ok := tok.Extra("id_token").(string); ok {
		token.IDToken = idToken
	}

	return token, nil
}

// Identity validates the ID token, merges its claims with the access-token
// claims and projects the normalized identity. A validation failure aborts
// the attempt; the caller should treat it as an authentication failure.
func (s *Strategy) Identity(token *Token, req RequestParams) (Identity, error) {
	if token == nil {
		return Identity{}, ErrMissingIDToken
	}

	tenant, err := s.Resolve(req)
	if err != nil {
		return Identity{}, err
	}

	sess := &session{
		strategy: s,
		tenant:   tenant,
		token:    token,
	}
	return sess.identity()
}

// Authenticate is the full callback-side flow: code exchange followed by
// identity resolution.
func (s *Strategy) Authenticate(ctx context.Context, code string, req RequestParams) (Identity, *Token, error) {
	token, err := s.Exchange(ctx, code, req)
	if err != nil {
		return Identity{}, nil, err
	}

	identity, err := s.Identity(token, req)
	if err != nil {
		return Identity{}, nil, err
	}

	return identity, token, nil
}

// oauthConfig builds the x/oauth2 configuration for the resolved tenant.
func (s *Strategy) oauthConfig(tenant *ResolvedTenant) *oauth2.Config {
	endpoints := tenant.Endpoints()

	cfg := &oauth2.Config{
		ClientID: tenant.ClientID,
		Endpoint: oauth2.Endpoint{
			AuthURL:  endpoints.AuthorizeURL,
			TokenURL: endpoints.TokenURL,
			// Entra ID expects client credentials in the POST body, and the
			// client-assertion parameters only travel there.
			AuthStyle: oauth2.AuthStyleInParams,
		},
		RedirectURL: s.config.RedirectURL,
		Scopes:      strings.Fields(tenant.Scope),
	}

	if secret, ok := tenant.Credential.(SharedSecret); ok {
		cfg.ClientSecret = secret.Value
	}

	return cfg
}

// verifyIDToken lazily initializes the JWKS verifier for the tenant and
// checks the ID token signature.
func (s *Strategy) verifyIDToken(tenant *ResolvedTenant, idToken string) error {
	s.verifierOnce.Do(func() {
		s.verifier, s.verifierErr = newSignatureVerifier(context.Background(), tenant.JWKSURL())
	})
	if s.verifierErr != nil {
		return s.verifierErr
	}
	return s.verifier.verify(idToken)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
