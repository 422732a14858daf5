// Package backend is the typed REST client for the FitGarden core
// service, which owns persistence, pricing and payment state. Every
// response is decoded into a declared row struct and mapped to a view
// model here, so malformed backend data fails at this boundary.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrSessionExpired is returned when the backend answers 401; the
	// caller decides how to re-authenticate.
	ErrSessionExpired = errors.New("backend session expired")
	// ErrNotFound is returned when the backend answers 404.
	ErrNotFound = errors.New("record not found")
)

// TokenProvider supplies the bearer token attached to every backend
// request. Injected so the client carries no ambient session state.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenProvider returns a fixed token. Used for service accounts
// and in tests.
type StaticTokenProvider string

func (p StaticTokenProvider) Token(ctx context.Context) (string, error) {
	return string(p), nil
}

type staffTokenKey struct{}

// WithStaffToken returns a context carrying the caller's bearer token.
// The auth middleware attaches it so backend calls run as the signed-in
// staff member rather than the service account.
func WithStaffToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, staffTokenKey{}, token)
}

// StaffTokenProvider forwards the caller's token when the request
// context carries one, falling back to the service-account token.
type StaffTokenProvider struct {
	Fallback string
}

func (p StaffTokenProvider) Token(ctx context.Context) (string, error) {
	if token, ok := ctx.Value(staffTokenKey{}).(string); ok && token != "" {
		return token, nil
	}
	return p.Fallback, nil
}

// APIError is a non-2xx backend answer with its message, when one was
// provided.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// Client talks to the core backend over REST.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
	logger     *zap.Logger
}

// NewClient builds a backend client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, tokens TokenProvider, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		logger: logger,
	}
}

// do performs one request and decodes the response body into out (when
// out is non-nil). Non-2xx statuses become typed errors.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain backend token: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call backend: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrSessionExpired
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		apiErr := &APIError{Status: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
			Erro    string `json:"erro"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&msg); decodeErr == nil {
			if msg.Message != "" {
				apiErr.Message = msg.Message
			} else {
				apiErr.Message = msg.Erro
			}
		}
		c.logger.Warn("backend call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}
