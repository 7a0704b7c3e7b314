package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/avatax/errors"
	"github.com/kbukum/avatax/logger"
	"github.com/kbukum/avatax/observability"
	"github.com/kbukum/avatax/version"
)

const (
	// HeaderClient identifies the calling application and SDK to AvaTax.
	HeaderClient = "X-Avalara-Client"
	// HeaderCorrelationID carries the server-issued correlation id.
	HeaderCorrelationID = "x-correlation-id"

	contentTypeJSON = "application/json"
)

// Client executes AvaTax calls. It is safe for concurrent use; every call
// is independent and single-shot.
type Client struct {
	httpClient *http.Client
	config     Config
	baseURL    string
	creds      Credentials
	clientID   string
	log        *logger.Logger
	metrics    *observability.Metrics
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient sends requests through hc instead of a client built from
// Config.TLS. Its Timeout should be zero; call deadlines come from
// Config.Timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger replaces the logger built from Config.Logging.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithMetrics records request metrics on every call.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a client. The configuration and credentials are fixed for
// the lifetime of the client.
func New(cfg Config, creds Credentials, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config:   cfg,
		baseURL:  cfg.BaseURL(),
		creds:    creds,
		clientID: version.ClientID(cfg.AppName, cfg.AppVersion, cfg.MachineName),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		transport, err := newTransport(cfg.TLS)
		if err != nil {
			return nil, err
		}
		c.httpClient = &http.Client{Transport: transport}
	}
	if c.log == nil {
		c.log = logger.New(cfg.Logging)
	}
	return c, nil
}

// BaseURL returns the resolved base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// ClientID returns the X-Avalara-Client header value.
func (c *Client) ClientID() string { return c.clientID }

// Logger returns the client's logger.
func (c *Client) Logger() *logger.Logger { return c.log }

// Config returns a copy of the effective configuration.
func (c *Client) Config() Config { return c.config }

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client { return c.httpClient }

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// URL builds the absolute URL for path and params. An absolute path is
// kept as is.
func (c *Client) URL(path string, params ...QueryParam) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return BuildURL("", path, params...)
	}
	return BuildURL(c.baseURL, path, params...)
}

// Do executes one call. On success the response body is returned verbatim.
// On failure the error is an *errors.AvalaraError; the Response is returned
// alongside it whenever one was received.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}
	target := c.URL(req.Path, req.Query...)

	rec := logger.NewLogRecord(method, target, c.log.CaptureBodies())
	call := observability.NewCall(method, target, rec.RequestID, c.metrics)
	ctx, span := call.Start(ctx)

	opts, encErr := c.options(method, req)
	if encErr != nil {
		return nil, c.finish(ctx, call, span, rec, nil, encErr)
	}
	rec.RequestSent(opts.Body)

	resp, err := RunWithTimeout(ctx, c.config.Timeout, func(ctx context.Context) (*Response, error) {
		return c.roundTrip(ctx, target, opts)
	})
	if err != nil {
		return nil, c.finish(ctx, call, span, rec, nil, classifyFailure(ctx, c.config.Timeout, err))
	}
	resp.RequestID = rec.RequestID
	rec.ResponseReceived(resp.StatusCode, resp.CorrelationID)

	if aerr := classifyResponse(resp.StatusCode, resp.Body); aerr != nil {
		return resp, c.finish(ctx, call, span, rec, resp, aerr)
	}
	if req.Decode != nil {
		if err := req.Decode(resp.Body); err != nil {
			return resp, c.finish(ctx, call, span, rec, resp, errors.FromParse(resp.StatusCode, resp.Body, err))
		}
	}
	_ = c.finish(ctx, call, span, rec, resp, nil)
	return resp, nil
}

// options prepares headers and body. The fixed headers are applied last so
// configured defaults cannot replace them.
func (c *Client) options(method string, req Request) (HTTPOptions, *errors.AvalaraError) {
	h := make(http.Header, len(c.config.Headers)+len(req.Headers)+4)
	for k, v := range c.config.Headers {
		h.Set(k, v)
	}
	for k, v := range req.Headers {
		h.Set(k, v)
	}
	h.Set("Accept", contentTypeJSON)
	h.Set("Content-Type", contentTypeJSON)
	h.Set(HeaderClient, c.clientID)
	c.creds.apply(h)

	opts := HTTPOptions{Method: method, Headers: h}
	if req.Body == nil || method == http.MethodGet || method == http.MethodHead {
		return opts, nil
	}
	body, err := encodeBody(req.Body)
	if err != nil {
		return opts, errors.FromEncode(err)
	}
	opts.Body = body
	return opts, nil
}

func (c *Client) roundTrip(ctx context.Context, target string, opts HTTPOptions) (*Response, error) {
	var body io.Reader
	if opts.Body != nil {
		body = bytes.NewReader(opts.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, opts.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header = opts.Headers

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return &Response{
		StatusCode:    resp.StatusCode,
		Headers:       resp.Header,
		Body:          data,
		CorrelationID: resp.Header.Get(HeaderCorrelationID),
	}, nil
}

// finish completes and emits the log record and closes the span. It returns
// aerr as an error, or nil.
func (c *Client) finish(ctx context.Context, call *observability.Call, span trace.Span, rec *logger.LogRecord, resp *Response, aerr *errors.AvalaraError) error {
	var (
		body          []byte
		status        int
		correlationID string
	)
	if resp != nil {
		body, status, correlationID = resp.Body, resp.StatusCode, resp.CorrelationID
	}

	rec.Complete(body, aerr)
	c.log.Emit(rec)

	if aerr == nil {
		call.End(ctx, span, status, correlationID, "", "", nil)
		return nil
	}
	call.End(ctx, span, status, correlationID, string(aerr.Code), aerr.Kind().String(), aerr)
	return aerr
}

// encodeBody serializes a payload. Raw bytes are sent as is.
func encodeBody(body any) ([]byte, error) {
	switch v := body.(type) {
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	case io.Reader:
		return io.ReadAll(v)
	default:
		return json.Marshal(v)
	}
}
