package entraid

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// newHTTPClient creates the HTTP client used for the token exchange and JWKS
// retrieval. Retry and backoff policy is left to the caller's transport; a
// failed exchange requires a fresh authorization-code round trip anyway.
func newHTTPClient(timeout time.Duration, tlsConfig *tls.Config, insecureSkipVerify bool) *http.Client {
	customTLS := tlsConfig
	if customTLS == nil {
		customTLS = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	} else {
		// Clone to avoid modifying the original
		customTLS = tlsConfig.Clone()
	}

	if insecureSkipVerify {
		customTLS.InsecureSkipVerify = true
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig:       customTLS,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
