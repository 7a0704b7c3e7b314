package httpclient

import (
	"context"
	"fmt"

	"github.com/kbukum/avatax/component"
)

const componentName = "avatax"

// Component wraps a Client with lifecycle management.
// The client is created lazily in Start().
type Component struct {
	client *Client
	config Config
	creds  Credentials
	opts   []Option
}

// compile-time assertions
var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a new AvaTax client component.
func NewComponent(cfg Config, creds Credentials, opts ...Option) *Component {
	return &Component{config: cfg, creds: creds, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string {
	return componentName
}

// Start builds the client.
func (c *Component) Start(_ context.Context) error {
	cl, err := New(c.config, c.creds, c.opts...)
	if err != nil {
		return err
	}
	c.client = cl
	return nil
}

// Stop releases idle connections.
func (c *Component) Stop(_ context.Context) error {
	if c.client != nil {
		c.client.Close()
	}
	return nil
}

// Health reports whether the client has been built. It never calls AvaTax.
func (c *Component) Health(_ context.Context) component.Health {
	if c.client == nil {
		return component.Health{Name: c.Name(), Status: component.StatusUnhealthy, Message: "not started"}
	}
	return component.Health{Name: c.Name(), Status: component.StatusHealthy}
}

// Describe returns component description for the startup summary.
func (c *Component) Describe() component.Description {
	base := ResolveBaseURL(c.config.Environment)
	return component.Description{
		Name:    "AvaTax client",
		Type:    "http-client",
		Details: fmt.Sprintf("%s auth=%s timeout=%s", base, c.creds.Type(), c.config.Timeout),
	}
}

// Client returns the underlying client. Must be called after Start().
func (c *Component) Client() *Client {
	return c.client
}
