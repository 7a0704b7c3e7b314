package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kbukum/avatax/httpclient"
)

// Client decodes AvaTax JSON responses into Go types.
type Client struct {
	http *httpclient.Client
}

// New creates a REST client from the given config and credentials.
func New(cfg httpclient.Config, creds httpclient.Credentials, opts ...httpclient.Option) (*Client, error) {
	c, err := httpclient.New(cfg, creds, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{http: c}, nil
}

// NewFromClient creates a REST client from an existing HTTP client.
func NewFromClient(c *httpclient.Client) *Client {
	return &Client{http: c}
}

// HTTP returns the underlying HTTP client.
func (c *Client) HTTP() *httpclient.Client {
	return c.http
}

// RequestOption configures a single REST request.
type RequestOption func(*httpclient.Request)

// WithQuery appends query parameters in order.
func WithQuery(params ...httpclient.QueryParam) RequestOption {
	return func(r *httpclient.Request) {
		r.Query = append(r.Query, params...)
	}
}

// WithHeader sets a request header.
func WithHeader(key, value string) RequestOption {
	return func(r *httpclient.Request) {
		if r.Headers == nil {
			r.Headers = make(map[string]string)
		}
		r.Headers[key] = value
	}
}

// Response wraps a typed REST response.
type Response[T any] struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers http.Header
	// CorrelationID is the server-issued x-correlation-id.
	CorrelationID string
	// Data is the decoded response body.
	Data T
}

// Get performs a GET request and decodes the JSON response into type T.
func Get[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, c, http.MethodGet, path, nil, opts...)
}

// Post performs a POST request with a JSON body and decodes the response into type T.
func Post[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, c, http.MethodPost, path, body, opts...)
}

// Put performs a PUT request with a JSON body and decodes the response into type T.
func Put[T any](ctx context.Context, c *Client, path string, body any, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, c, http.MethodPut, path, body, opts...)
}

// Delete performs a DELETE request and decodes the response into type T.
func Delete[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (*Response[T], error) {
	return do[T](ctx, c, http.MethodDelete, path, nil, opts...)
}

func do[T any](ctx context.Context, c *Client, method, path string, body any, opts ...RequestOption) (*Response[T], error) {
	var data T
	decode := func(b []byte) error {
		if len(b) == 0 {
			return nil
		}
		return json.Unmarshal(b, &data)
	}
	resp, err := send(ctx, c, method, path, body, decode, opts...)
	if err != nil {
		return nil, err
	}
	return &Response[T]{
		StatusCode:    resp.StatusCode,
		Headers:       resp.Headers,
		CorrelationID: resp.CorrelationID,
		Data:          data,
	}, nil
}

// send executes one call. decode runs inside the call so a body that does
// not fit the target type is logged as the call's failure.
func send(ctx context.Context, c *Client, method, path string, body any, decode func([]byte) error, opts ...RequestOption) (*httpclient.Response, error) {
	req := httpclient.Request{
		Method: method,
		Path:   path,
		Body:   body,
	}
	for _, opt := range opts {
		opt(&req)
	}
	req.Decode = decode
	return c.http.Do(ctx, req)
}
