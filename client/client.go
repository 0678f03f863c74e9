// Package client is the Go SDK for the quickcourt booking API. It covers the
// player-facing booking flow: loading venue availability, building a
// contiguous slot selection and driving checkout through an external payment
// widget, with transparent bearer-token refresh on the transport.
package client

import (
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client talks to the quickcourt REST API. The base URL includes the version
// prefix, e.g. "https://api.example.com/v1".
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenStore
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpc = h
	}
}

func New(baseURL string, tokens TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}
