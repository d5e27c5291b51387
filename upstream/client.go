// Package upstream performs the outbound HTTP calls to the manga provider.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shinigami-rest/shinigami/key"
	"github.com/shinigami-rest/shinigami/log"
	"github.com/shinigami-rest/shinigami/network"
	"github.com/spf13/viper"
)

const imageAccept = "image/avif,image/webp,image/apng,image/svg+xml,image/*,*/*;q=0.8"

// Options configure a Client.
type Options struct {
	// HTTP performs the requests. Its Timeout bounds each call.
	HTTP *http.Client
	// APIURL is prepended to every path passed to FetchJSON.
	APIURL string
	// BaseURL is the provider's public site, sent as Origin and Referer.
	BaseURL string
	// Random produces the X-Requested-With value. Defaults to RandomLetters.
	Random func() string
}

// Client talks to the provider API and CDN. It is safe for concurrent use.
type Client struct {
	http    *http.Client
	apiURL  string
	baseURL string
	random  func() string
}

// Blob is a binary payload together with the type the provider declared for it.
type Blob struct {
	Body        []byte
	ContentType string
}

// New creates a Client.
func New(options Options) *Client {
	c := &Client{
		http:    options.HTTP,
		apiURL:  strings.TrimSuffix(options.APIURL, "/"),
		baseURL: strings.TrimSuffix(options.BaseURL, "/"),
		random:  options.Random,
	}

	if c.http == nil {
		c.http = network.FromConfig()
	}
	if c.random == nil {
		c.random = RandomLetters
	}

	return c
}

// FromConfig creates a Client pointed at the configured provider endpoints.
func FromConfig() *Client {
	return New(Options{
		HTTP:    network.FromConfig(),
		APIURL:  viper.GetString(key.ProviderAPIURL),
		BaseURL: viper.GetString(key.ProviderBaseURL),
	})
}

// BaseURL returns the provider's public site without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchJSON issues a GET to the API root joined with path and decodes the body into a generic value.
func (c *Client) FetchJSON(ctx context.Context, path string, query url.Values) (any, error) {
	target := c.apiURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("DNT", "1")
	req.Header.Set("Origin", c.baseURL)
	req.Header.Set("Sec-GPC", "1")
	req.Header.Set("X-Requested-With", c.random())

	body, _, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var value any
	decoder := json.NewDecoder(bytes.NewReader(body))
	if err := decoder.Decode(&value); err != nil {
		log.Errorf("decode %s: %s", path, err)
		return nil, &Error{Err: fmt.Errorf("decode response: %w", err)}
	}

	return value, nil
}

// FetchBinary issues a GET to an arbitrary URL with image-oriented headers and returns the raw body.
func (c *Client) FetchBinary(ctx context.Context, rawURL string) (*Blob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &Error{Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Accept", imageAccept)
	req.Header.Set("DNT", "1")
	req.Header.Set("Referer", c.baseURL+"/")
	req.Header.Set("Sec-Fetch-Dest", "empty")
	req.Header.Set("Sec-GPC", "1")
	req.Header.Set("X-Requested-With", c.random())

	body, header, err := c.do(req)
	if err != nil {
		return nil, err
	}

	return &Blob{Body: body, ContentType: header.Get("Content-Type")}, nil
}

func (c *Client) do(req *http.Request) ([]byte, http.Header, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		log.WithFields(log.Fields{"url": req.URL.Redacted()}).Warnf("upstream request failed: %s", err)
		return nil, nil, &Error{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &Error{Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.WithFields(log.Fields{
			"url":    req.URL.Redacted(),
			"status": resp.StatusCode,
		}).Warn("upstream responded with an error")
		return nil, nil, &Error{Status: resp.StatusCode, Message: failureMessage(resp.StatusCode, body)}
	}

	return body, resp.Header, nil
}

// failureMessage extracts the provider's "message" field, falling back to a generic status message.
func failureMessage(status int, body []byte) string {
	var payload struct {
		Message any `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg, ok := payload.Message.(string); ok && msg != "" {
			return msg
		}
	}
	return statusMessage(status)
}
