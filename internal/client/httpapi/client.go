// Package httpapi implements the client for the TQL database HTTP API:
// a generic request invoker, the full operation surface, and scoped
// transaction/database helpers with guaranteed terminal actions.
package httpapi

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/tqlclient/internal/client/auth"
	"github.com/dmitrijs2005/tqlclient/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/dmitrijs2005/tqlclient"

// Client talks to one server endpoint as one user. It is safe for
// concurrent use; the only shared mutable state is the token cache.
type Client struct {
	endpoint string
	creds    auth.Credentials
	http     *http.Client
	tokens   *auth.TokenCache
	tracer   trace.Tracer
	log      logging.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Timeouts are the
// transport's business; the core adds no deadline logic of its own.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger replaces the default slog-backed logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) { c.tracer = tp.Tracer(tracerName) }
}

// New builds a Client for the given base URL (e.g. "http://localhost:8000")
// and credentials. Tokens are fetched lazily on the first authenticated call.
func New(endpoint string, creds auth.Credentials, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		creds:    creds,
		http:     &http.Client{},
		tracer:   otel.Tracer(tracerName),
		log:      logging.NewSlogLogger(slog.Default()),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.tokens = auth.NewTokenCache(c)
	return c
}
