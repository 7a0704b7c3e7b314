package avatax

import (
	"fmt"
	"net/url"

	"github.com/kbukum/avatax/httpclient"
	"github.com/kbukum/avatax/httpclient/rest"
)

const apiPrefix = "/api/v2"

// Client calls AvaTax endpoints. It is safe for concurrent use.
type Client struct {
	rest *rest.Client
}

// New creates a client from configuration and credentials.
func New(cfg httpclient.Config, creds httpclient.Credentials, opts ...httpclient.Option) (*Client, error) {
	rc, err := rest.New(cfg, creds, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{rest: rc}, nil
}

// NewFromHTTP wraps an existing HTTP client.
func NewFromHTTP(hc *httpclient.Client) *Client {
	return &Client{rest: rest.NewFromClient(hc)}
}

// REST returns the typed REST client, for endpoints not wrapped here.
func (c *Client) REST() *rest.Client { return c.rest }

// HTTP returns the underlying HTTP client.
func (c *Client) HTTP() *httpclient.Client { return c.rest.HTTP() }

// Close releases idle connections.
func (c *Client) Close() { c.rest.HTTP().Close() }

func data[T any](resp *rest.Response[T], err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func companyPath(id int64) string {
	return fmt.Sprintf("%s/companies/%d", apiPrefix, id)
}

func transactionPath(companyCode, transactionCode, action string) string {
	return fmt.Sprintf("%s/companies/%s/transactions/%s/%s",
		apiPrefix, url.PathEscape(companyCode), url.PathEscape(transactionCode), action)
}
