package entraid

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestResolveTenant_Defaults(t *testing.T) {
	provider := &TenantOptions{
		ID:     "test-client",
		Secret: "test-secret",
	}

	tenant, err := resolveTenant(provider, RequestParams{}, zap.NewNop())
	if err != nil {
		t.Fatalf("resolveTenant() failed: %v", err)
	}

	if tenant.TenantID != "common" {
		t.Errorf("Expected tenant id 'common', got %q", tenant.TenantID)
	}

	if tenant.BaseURL != "https://login.microsoftonline.com" {
		t.Errorf("Expected default base url, got %q", tenant.BaseURL)
	}

	if tenant.Scope != "openid profile email" {
		t.Errorf("Expected default scope, got %q", tenant.Scope)
	}

	secret, ok := tenant.Credential.(SharedSecret)
	if !ok {
		t.Fatalf("Expected SharedSecret credential, got %T", tenant.Credential)
	}
	if secret.Value != "test-secret" {
		t.Errorf("Expected secret 'test-secret', got %q", secret.Value)
	}
}

func TestResolveTenant_CredentialSelection(t *testing.T) {
	tests := []struct {
		name     string
		provider *TenantOptions
		want     interface{}
		wantErr  error
	}{
		{
			name:     "secret only",
			provider: &TenantOptions{ID: "id", Secret: "secret"},
			want:     SharedSecret{Value: "secret"},
		},
		{
			name:     "certificate with tenant id",
			provider: &TenantOptions{ID: "id", CertPath: "/tmp/cert.pfx", Tenant: "tenant"},
			want:     CertificateAssertion{Path: "/tmp/cert.pfx"},
		},
		{
			name:     "secret wins over certificate",
			provider: &TenantOptions{ID: "id", Secret: "secret", CertPath: "/tmp/cert.pfx", Tenant: "tenant"},
			want:     SharedSecret{Value: "secret"},
		},
		{
			name:     "no credential",
			provider: &TenantOptions{ID: "id"},
			wantErr:  ErrMissingCredential,
		},
		{
			name:     "certificate without tenant id",
			provider: &TenantOptions{ID: "id", CertPath: "/tmp/cert.pfx"},
			wantErr:  ErrMissingCredential,
		},
		{
			name:     "tenant id without certificate",
			provider: &TenantOptions{ID: "id", Tenant: "tenant"},
			wantErr:  ErrMissingCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tenant, err := resolveTenant(tt.provider, RequestParams{}, zap.NewNop())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("resolveTenant() failed: %v", err)
			}
			if tenant.Credential != tt.want {
				t.Errorf("Expected credential %#v, got %#v", tt.want, tenant.Credential)
			}
		})
	}
}

func TestResolveTenant_MissingClientID(t *testing.T) {
	_, err := resolveTenant(&TenantOptions{Secret: "secret"}, RequestParams{}, zap.NewNop())
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestResolveTenant_NilProvider(t *testing.T) {
	_, err := resolveTenant(nil, RequestParams{}, zap.NewNop())
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestResolveTenant_ScopePrecedence(t *testing.T) {
	tests := []struct {
		name          string
		providerScope string
		requestScope  string
		want          string
	}{
		{
			name: "default when nothing configured",
			want: "openid profile email",
		},
		{
			name:          "provider scope overrides default",
			providerScope: "openid User.Read",
			want:          "openid User.Read",
		},
		{
			name:          "request scope overrides provider scope",
			providerScope: "openid User.Read",
			requestScope:  "openid Calendars.Read",
			want:          "openid Calendars.Read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &TenantOptions{ID: "id", Secret: "secret", Scopes: tt.providerScope}
			tenant, err := resolveTenant(provider, RequestParams{Scope: tt.requestScope}, zap.NewNop())
			if err != nil {
				t.Fatalf("resolveTenant() failed: %v", err)
			}
			if tenant.Scope != tt.want {
				t.Errorf("Expected scope %q, got %q", tt.want, tenant.Scope)
			}
		})
	}
}

func TestResolveTenant_AuthorizeParams(t *testing.T) {
	provider := &TenantOptions{
		ID:     "id",
		Secret: "secret",
		Hint:   "contoso.com",
		ExtraAuthParams: map[string]string{
			"prompt": "login",
			"lc":     "1031",
		},
	}

	tenant, err := resolveTenant(provider, RequestParams{Prompt: "select_account"}, zap.NewNop())
	if err != nil {
		t.Fatalf("resolveTenant() failed: %v", err)
	}

	if got := tenant.AuthorizeParams["domain_hint"]; got != "contoso.com" {
		t.Errorf("Expected domain_hint 'contoso.com', got %q", got)
	}

	// Request prompt overrides the provider's prompt.
	if got := tenant.AuthorizeParams["prompt"]; got != "select_account" {
		t.Errorf("Expected prompt 'select_account', got %q", got)
	}

	// Unrelated provider params survive the overrides.
	if got := tenant.AuthorizeParams["lc"]; got != "1031" {
		t.Errorf("Expected lc '1031', got %q", got)
	}
}

func TestResolveTenant_NoRequestOverrides(t *testing.T) {
	provider := &TenantOptions{
		ID:              "id",
		Secret:          "secret",
		ExtraAuthParams: map[string]string{"prompt": "login"},
	}

	tenant, err := resolveTenant(provider, RequestParams{}, zap.NewNop())
	if err != nil {
		t.Fatalf("resolveTenant() failed: %v", err)
	}

	if got := tenant.AuthorizeParams["prompt"]; got != "login" {
		t.Errorf("Expected provider prompt 'login' to survive, got %q", got)
	}
}

func TestResolvedTenant_Issuer(t *testing.T) {
	tenant := &ResolvedTenant{BaseURL: BaseURL, TenantID: "tenant-123"}
	want := "https://login.microsoftonline.com/tenant-123/v2.0"
	if got := tenant.Issuer(); got != want {
		t.Errorf("Expected issuer %q, got %q", want, got)
	}

	common := &ResolvedTenant{BaseURL: BaseURL, TenantID: "common"}
	if got := common.Issuer(); got != "" {
		t.Errorf("Expected empty issuer for common tenant, got %q", got)
	}
}

func TestResolvedTenant_JWKSURL(t *testing.T) {
	tenant := &ResolvedTenant{BaseURL: BaseURL, TenantID: "tenant-123"}
	want := "https://login.microsoftonline.com/tenant-123/discovery/v2.0/keys"
	if got := tenant.JWKSURL(); got != want {
		t.Errorf("Expected jwks url %q, got %q", want, got)
	}
}
