package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/nicograef/jotti/internal/logging"
)

const (
	RequestIDHeader = "X-Request-ID"

	defaultTimeout = 10 * time.Second
	healthEndpoint = "health"
)

// TokenGetter supplies the bearer token; ok=false means send no
// Authorization header.
type TokenGetter interface {
	Token(ctx context.Context) (token string, ok bool)
}

// Shape is a response body that can check itself after decoding.
type Shape interface {
	Validate() error
}

type Gateway struct {
	baseURL    string
	tokens     TokenGetter
	httpClient *http.Client
	timeout    time.Duration
	limiter    *rate.Limiter
	log        logging.Logger
}

type Option func(*Gateway)

func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.httpClient = c }
}

// WithTimeout bounds every call; d <= 0 keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// WithRateLimit caps outgoing calls at perSecond with the given burst.
// perSecond <= 0 disables limiting.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(g *Gateway) {
		if perSecond <= 0 {
			g.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		g.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

func WithLogger(l logging.Logger) Option {
	return func(g *Gateway) { g.log = l }
}

func New(baseURL string, tokens TokenGetter, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		httpClient: http.DefaultClient,
		timeout:    defaultTimeout,
		log:        logging.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) url(endpoint string) string {
	return g.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}

// Post sends body as JSON to endpoint. On 2xx the response is decoded into
// out and validated; a nil out discards the response body.
func (g *Gateway) Post(ctx context.Context, endpoint string, body any, out Shape) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request for %s: %w", endpoint, err)
	}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url(endpoint), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request for %s: %w", endpoint, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if g.tokens != nil {
		if token, ok := g.tokens.Token(ctx); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	log := g.log.With("endpoint", endpoint, "request_id", requestID)

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "reading response failed", "status", resp.StatusCode, "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseBackendError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		log.Error(ctx, "response does not decode", "error", err)
		return &ResponseShapeError{Endpoint: endpoint}
	}
	if err := out.Validate(); err != nil {
		log.Error(ctx, "response does not match shape", "error", err)
		return &ResponseShapeError{Endpoint: endpoint}
	}

	return nil
}

// Ping checks that the backend answers GET {baseURL}/health with 2xx.
func (g *Gateway) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url(healthEndpoint), nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: health returned %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}
