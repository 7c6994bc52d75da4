package api

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/makanscan/internal/logging"
)

// DefaultTimeout bounds every request unless WithTimeout says otherwise.
const DefaultTimeout = 30 * time.Second

type Option func(*Client)

// WithTimeout sets the per-request timeout. Ignored when WithHTTPClient is used.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithRequestInterceptor appends ic after the default request chain.
func WithRequestInterceptor(ic RequestInterceptor) Option {
	return func(c *Client) {
		c.extraRequest = append(c.extraRequest, ic)
	}
}

// WithResponseInterceptor appends ic after the default response chain.
func WithResponseInterceptor(ic ResponseInterceptor) Option {
	return func(c *Client) {
		c.extraResponse = append(c.extraResponse, ic)
	}
}
