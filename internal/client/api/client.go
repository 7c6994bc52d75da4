package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/makanscan/internal/client/storage"
	"github.com/dmitrijs2005/makanscan/internal/logging"
)

// Client talks to the backend. It is safe for concurrent use.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     logging.Logger

	extraRequest  []RequestInterceptor
	extraResponse []ResponseInterceptor

	request  []RequestInterceptor
	response []ResponseInterceptor
}

// New creates a client for baseURL (e.g. "http://host:5000/api/v1") that
// reads and clears the session through store.
func New(baseURL string, store storage.Storage, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	c.request = append([]RequestInterceptor{RequestID(), BearerToken(store)}, c.extraRequest...)
	c.response = append([]ResponseInterceptor{ClearSessionOnUnauthorized(store, c.logger)}, c.extraResponse...)
	return c
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// do runs one request through the interceptor chains. The returned Exchange
// is non-nil whenever the request was sent.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*Exchange, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	for _, ic := range c.request {
		if err := ic(ctx, req); err != nil {
			return nil, err
		}
	}

	op := method + " " + path
	ex := &Exchange{Request: req}
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		ex.Duration = time.Since(start)
		err = &TransportError{Op: op, Err: err}
	} else {
		ex.StatusCode = resp.StatusCode
		ex.Header = resp.Header
		ex.Body, err = io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		ex.Duration = time.Since(start)

		switch {
		case err != nil:
			err = &TransportError{Op: op, Err: err}
		case resp.StatusCode < 200 || resp.StatusCode > 299:
			err = newAPIError(resp.StatusCode, ex.Body)
		}
	}

	for _, ic := range c.response {
		err = ic(ctx, ex, err)
	}
	return ex, err
}

// send performs a call whose response body is ignored.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) error {
	_, err := c.do(ctx, method, path, query, body)
	return err
}

func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var zero T
	ex, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return zero, err
	}
	env, err := decodeEnvelope[T](ex.Body)
	if err != nil {
		return zero, err
	}
	return env.Data, nil
}

func list[T any](ctx context.Context, c *Client, path string, query url.Values) (Page[T], error) {
	ex, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return Page[T]{}, err
	}
	return decodePage[T](ex.Body)
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", fmt.Sprint(page))
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	return q
}

func escape(id string) string {
	return url.PathEscape(id)
}
