package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	port_client "github.com/PedroCamargo-dev/transfers-client/internal/ports/gateway/client"
)

var _ port_client.Requester = (*Requester)(nil)

type Config struct {
	BaseURL        string
	Timeout        time.Duration
	Headers        map[string]string
	SnakeCaseQuery bool
}

// Requester is the default collaborator: one HTTP exchange per call, no retries.
type Requester struct {
	baseURL    string
	httpClient *http.Client
	headers    map[string]string
	snakeCase  bool
	logger     *slog.Logger
}

type Option func(*Requester)

func WithHTTPClient(c *http.Client) Option {
	return func(r *Requester) {
		r.httpClient = c
	}
}

func New(cfg Config, logger *slog.Logger, opts ...Option) (*Requester, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, cfg.BaseURL)
	}

	if logger == nil {
		logger = slog.Default()
	}

	r := &Requester{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		headers:   cfg.Headers,
		snakeCase: cfg.SnakeCaseQuery,
		logger:    logger,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

func (r *Requester) Request(ctx context.Context, opts port_client.RequestOptions, out any) error {
	u, err := url.Parse(r.baseURL + opts.URL)
	if err != nil {
		return fmt.Errorf("failed to build url: %w", err)
	}

	q := opts.Query
	if r.snakeCase {
		q = snakeCaseQuery(q)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, opts.Method, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	start := time.Now()

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	r.logger.DebugContext(ctx, "transfers api response",
		"method", opts.Method,
		"path", opts.URL,
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, body)
		r.logger.WarnContext(ctx, "transfers api returned error",
			"method", opts.Method,
			"path", opts.URL,
			"status", resp.StatusCode,
			"error_code", apiErr.Code,
		)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
