package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arcticwolves/clubkit/core/logger"
)

// TokenSource yields the bearer token to attach to outgoing requests.
// The tokenstore.Store interface satisfies it directly.
type TokenSource interface {
	Get(ctx context.Context) (string, error)
}

// Response is the uniform envelope returned by every backend endpoint.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Client issues JSON requests against the backend. It is safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        *slog.Logger
	userAgent  string
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Transport-level
// concerns like timeouts and proxies belong there.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithTokenSource sets the source of the bearer token. Requests made
// without a token source, or while the source is empty, carry no
// Authorization header.
func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) {
		c.tokens = tokens
	}
}

// WithLogger sets the logger for request-level debug logging.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errors.Join(ErrInvalidBaseURL, err)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		userAgent:  "clubkit/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewFromConfig creates a client from an environment-loaded Config.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	return New(cfg.BaseURL, append([]Option{WithTimeout(cfg.Timeout)}, opts...)...)
}

// Do performs a request and decodes the response body into out when out is
// non-nil. A 204 response or empty body leaves out untouched. Non-2xx
// responses are returned as *Error; transport failures wrap ErrRequestFailed.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	_, err := c.do(ctx, method, path, body, out)
	return err
}

// do is Do with the HTTP status exposed, so envelope helpers can translate
// a 204 into a success envelope.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, errors.Join(ErrEncodeRequest, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, errors.Join(ErrRequestFailed, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	if c.tokens != nil {
		// A missing token is not an error here: unauthenticated calls
		// (login) go out without the header.
		if token, err := c.tokens.Get(ctx); err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.DebugContext(ctx, "request failed",
			logger.Method(method),
			logger.Path(path),
			logger.RequestID(requestID),
			logger.Error(err),
		)
		return 0, errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	c.log.DebugContext(ctx, "request completed",
		logger.Method(method),
		logger.Path(path),
		logger.StatusCode(resp.StatusCode),
		logger.RequestID(requestID),
		logger.Elapsed(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, newError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, errors.Join(ErrDecodeResponse, err)
	}
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return resp.StatusCode, errors.Join(ErrDecodeResponse, err)
	}
	return resp.StatusCode, nil
}

// newError extracts the error message from a non-2xx response body, falling
// back to the HTTP status text.
func newError(resp *http.Response) *Error {
	apiErr := &Error{
		Status:  resp.StatusCode,
		Message: http.StatusText(resp.StatusCode),
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return apiErr
	}

	switch {
	case body.Error != "":
		apiErr.Message = body.Error
	case body.Message != "":
		apiErr.Message = body.Message
	}
	return apiErr
}

// Get issues a GET request and decodes the enveloped response.
func Get[T any](ctx context.Context, c *Client, path string) (Response[T], error) {
	return request[T](ctx, c, http.MethodGet, path, nil)
}

// Post issues a POST request and decodes the enveloped response.
func Post[T any](ctx context.Context, c *Client, path string, body any) (Response[T], error) {
	return request[T](ctx, c, http.MethodPost, path, body)
}

// Put issues a PUT request and decodes the enveloped response.
func Put[T any](ctx context.Context, c *Client, path string, body any) (Response[T], error) {
	return request[T](ctx, c, http.MethodPut, path, body)
}

// Delete issues a DELETE request and decodes the enveloped response.
func Delete[T any](ctx context.Context, c *Client, path string) (Response[T], error) {
	return request[T](ctx, c, http.MethodDelete, path, nil)
}

func request[T any](ctx context.Context, c *Client, method, path string, body any) (Response[T], error) {
	var res Response[T]
	status, err := c.do(ctx, method, path, body, &res)
	if err == nil && status == http.StatusNoContent {
		// 204 carries no body; translate it to a success envelope.
		res.Success = true
	}
	return res, err
}
