package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/halap/go-sdk/pkg/core"
)

// Doer issues a single HTTP request. It is the injectable transport of the
// client; *http.Client satisfies it. Cancellation flows through the request
// context.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client represents a connection to the halap service.
type Client struct {
	provider ConfigProvider
	doer     Doer
	logger   logrus.FieldLogger
}

// Option configures a Client.
type Option func(*Client)

// WithDoer replaces the default HTTP transport.
func WithDoer(doer Doer) Option {
	return func(c *Client) {
		c.doer = doer
	}
}

// WithLogger sets the logger used for skipped-frame and diagnostic logging.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new halap client backed by the given configuration provider.
func New(provider ConfigProvider, opts ...Option) (*Client, error) {
	if provider == nil {
		return nil, &core.ConfigError{
			Field: "provider",
			Value: nil,
			Err:   errors.New("config provider cannot be nil"),
		}
	}

	c := &Client{
		provider: provider,
		doer:     http.DefaultClient,
		logger:   logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// resolveConfig resolves and validates configuration for one operation.
func (c *Client) resolveConfig(ctx context.Context) (Config, error) {
	cfg, err := c.provider.Resolve(ctx)
	if err != nil {
		return Config{}, &core.ConfigError{
			Field: "provider",
			Value: nil,
			Err:   fmt.Errorf("failed to resolve config: %w", err),
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// newRequest builds a request against the configured base URL with bearer
// auth attached.
func (c *Client) newRequest(ctx context.Context, cfg Config, method, path string, query url.Values, body any) (*http.Request, error) {
	endpoint := strings.TrimSuffix(cfg.APIURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+cfg.APIToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// doJSON issues a request and decodes a JSON response into out. A nil out
// discards the body. Non-2xx responses map to *core.APIError.
func (c *Client) doJSON(ctx context.Context, operation, method, path string, query url.Values, body, out any) error {
	cfg, err := c.resolveConfig(ctx)
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, cfg, method, path, query, body)
	if err != nil {
		return err
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return handleErrorResponse(operation, resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", operation, err)
	}

	return nil
}

// errorBody is the JSON shape of halap error responses.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// handleErrorResponse maps a non-2xx response to an APIError. The message is
// taken from the response JSON error.message when parseable, otherwise a
// generic description carrying the status code.
func handleErrorResponse(operation string, resp *http.Response) error {
	apiErr := &core.APIError{
		Operation:  operation,
		StatusCode: resp.StatusCode,
	}

	if resp.Body != nil {
		var parsed errorBody
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err == nil && parsed.Error.Message != "" {
			apiErr.Message = parsed.Error.Message
		}
	}

	return apiErr
}
