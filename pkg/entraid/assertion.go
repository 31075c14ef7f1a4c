package entraid

import (
	"crypto/rsa"
	"crypto/sha1"
	"crypto/x509"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"software.sslmate.com/src/go-pkcs12"
)

// ClientAssertionType is the grant parameter value identifying a JWT bearer
// client assertion.
const ClientAssertionType = "urn:ietf:params:oauth:client-assertion-type:jwt-bearer"

// assertionLifetime bounds the validity of a client assertion.
const assertionLifetime = 300 * time.Second

// ClientAssertion is a signed JWT that authenticates the client application
// to the token endpoint without a shared secret. Each assertion carries a
// fresh jti and current-time claims, so it is built per attempt and never
// reused.
type ClientAssertion struct {
	// JWT is the serialized, RS256-signed assertion.
	JWT string

	// Claims are the signed claims, retained for inspection.
	Claims jwt.MapClaims

	// X5C is the base64 DER encoding of the leaf certificate.
	X5C []string

	// X5T is the base64 SHA-1 thumbprint of the DER certificate.
	X5T string
}

// signClientAssertion reads the PKCS#12 bundle at certificatePath and builds
// a signed assertion for the tenant-scoped token endpoint. Read or parse
// failures are permanent configuration faults and are not retried.
func signClientAssertion(tenantID, clientID, certificatePath string) (*ClientAssertion, error) {
	key, cert, err := loadCertificate(certificatePath)
	if err != nil {
		return nil, err
	}
	return newClientAssertion(tenantID, clientID, key, cert)
}

// loadCertificate decodes a PKCS#12 certificate bundle into its RSA private
// key and leaf certificate.
func loadCertificate(path string) (*rsa.PrivateKey, *x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading certificate %s: %v", ErrCredential, path, err)
	}

	key, cert, err := pkcs12.Decode(data, "")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: parsing certificate %s: %v", ErrCredential, path, err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, nil, fmt.Errorf("%w: certificate %s does not contain an RSA private key", ErrCredential, path)
	}

	return rsaKey, cert, nil
}

// newClientAssertion signs the assertion claims with the certificate's
// private key and attaches the x5c and x5t headers so the relying party can
// validate the signature without a pre-shared key.
func newClientAssertion(tenantID, clientID string, key *rsa.PrivateKey, cert *x509.Certificate) (*ClientAssertion, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"aud": fmt.Sprintf("%s/%s/oauth2/v2.0/token", BaseURL, tenantID),
		"exp": now.Add(assertionLifetime).Unix(),
		"iss": clientID,
		"jti": uuid.NewString(),
		"nbf": now.Unix(),
		"sub": clientID,
		"iat": now.Unix(),
	}

	x5c := base64.StdEncoding.EncodeToString(cert.Raw)
	thumbprint := sha1.Sum(cert.Raw)
	x5t := base64.StdEncoding.EncodeToString(thumbprint[:])

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["x5c"] = []string{x5c}
	token.Header["x5t"] = x5t

	signed, err := token.SignedString(key)
	if err != nil {
		return nil, fmt.Errorf("%w: signing assertion: %v", ErrCredential, err)
	}

	return &ClientAssertion{
		JWT:    signed,
		Claims: claims,
		X5C:    []string{x5c},
		X5T:    x5t,
	}, nil
}

// TokenParams returns the extra token-request parameters for the
// certificate-credential flow.
func (a *ClientAssertion) TokenParams(tenantID, clientID string) map[string]string {
	return map[string]string{
		"tenant":                tenantID,
		"client_id":             clientID,
		"client_assertion":      a.JWT,
		"client_assertion_type": ClientAssertionType,
	}
}
