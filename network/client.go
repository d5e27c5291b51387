// Package network provides pre-configured HTTP clients for upstream provider communication.
package network

import (
	"net/http"
	"time"

	"github.com/shinigami-rest/shinigami/key"
	"github.com/spf13/viper"
)

// Options tune a client built by New.
type Options struct {
	// Timeout bounds the whole exchange, including reading the body.
	Timeout time.Duration
	// Fingerprint routes TLS connections through a Chrome client hello.
	Fingerprint bool
}

// New builds an HTTP client for outbound calls.
func New(options Options) *http.Client {
	var transport http.RoundTripper = newTransport()
	if options.Fingerprint {
		transport = &fingerprintTransport{}
	}

	return &http.Client{
		Timeout:   options.Timeout,
		Transport: transport,
	}
}

// FromConfig builds a client from the upstream.* settings.
func FromConfig() *http.Client {
	return New(Options{
		Timeout:     time.Duration(viper.GetInt(key.UpstreamTimeout)) * time.Second,
		Fingerprint: viper.GetBool(key.UpstreamTLSFingerprint),
	})
}

// newTransport initializes a tuned http.Transport with pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
