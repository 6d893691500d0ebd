// Package apiclient talks to the FadeApp REST API.
package apiclient

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

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/Kaleth2216/FadeApp/internal/httperr"
	"github.com/Kaleth2216/FadeApp/internal/sessionstore"
)

const (
	maxLoggedBody = 512

	CodeLoginRequired    = "login_required"
	LoginRequiredMessage = "Inicia sesión para continuar."
)

type Options struct {
	BaseURL     string
	Timeout     time.Duration
	MockEnabled bool
	// Transport defaults to http.DefaultTransport.
	Transport http.RoundTripper
}

type Client struct {
	store       sessionstore.TokenReader
	baseURL     string
	http        *http.Client
	log         zerolog.Logger
	mockEnabled bool
}

func New(opts Options, store sessionstore.TokenReader, log zerolog.Logger) *Client {
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	log = log.With().Str("component", "apiclient").Logger()

	return &Client{
		store:   store,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: &authTransport{base: base, store: store, log: log},
		},
		log:         log,
		mockEnabled: opts.MockEnabled,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// MockEnabled reports the configured flag. Request dispatch ignores it.
func (c *Client) MockEnabled() bool {
	return c.mockEnabled
}

// Request describes one call relative to the base URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	// Auth attaches the bearer token even on a public path. Owner-scoped
	// writes under /barbershops need it.
	Auth bool
}

// Do sends req and decodes a 2xx JSON body into out (when out is not nil).
// A raw *[]byte out receives the body undecoded.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	raw, err := c.send(ctx, req)
	if err != nil {
		return err
	}
	return decode(raw, out)
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body}, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path}, nil)
}

func (c *Client) send(ctx context.Context, r Request) ([]byte, error) {
	target := c.baseURL + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", r.Method, r.Path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", r.Method, r.Path, err)
	}
	req.Header.Set("Accept", "application/json")
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.Auth {
		if err := c.attachToken(req); err != nil {
			return nil, err
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", r.Method).Str("path", r.Path).Msg("no response")
		return nil, &httperr.NetworkError{Method: r.Method, Path: r.Path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &httperr.NetworkError{Method: r.Method, Path: r.Path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb httperr.Body
		_ = json.Unmarshal(raw, &eb)

		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("method", r.Method).
			Str("path", r.Path).
			Str("request_id", resp.Request.Header.Get(HeaderRequestID)).
			Str("body", excerpt(raw)).
			Msg("request failed")

		return nil, httperr.NewAPIError(resp.StatusCode, r.Method, r.Path, eb)
	}

	c.log.Debug().Int("status", resp.StatusCode).Str("method", r.Method).Str("path", r.Path).Msg("request ok")
	return raw, nil
}

func (c *Client) attachToken(req *http.Request) error {
	raw, ok, err := c.store.Get(req.Context(), sessionstore.KeyToken)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if !ok || raw == "" {
		return httperr.ErrValidation(CodeLoginRequired, LoginRequiredMessage)
	}
	(&oauth2.Token{AccessToken: raw, TokenType: "Bearer"}).SetAuthHeader(req)
	return nil
}

func decode(raw []byte, out any) error {
	if out == nil {
		return nil
	}
	if dst, ok := out.(*[]byte); ok {
		*dst = raw
		return nil
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func excerpt(raw []byte) string {
	if len(raw) > maxLoggedBody {
		return string(raw[:maxLoggedBody]) + "..."
	}
	return string(raw)
}
