package influx

import "context"

// Client is the entry point for talking to the server. It binds a Config to
// a Transport and hands out Database handles.
//
// A Client holds no mutable state. Sharing one across goroutines is safe as
// long as its Transport is.
type Client struct {
	config    *Config
	transport Transport
}

// NewClient creates a client with the default HTTP transport.
func NewClient(config *Config) *Client {
	return NewClientWithTransport(config, NewHTTPTransport())
}

// NewClientWithTransport creates a client with a caller-supplied transport.
func NewClientWithTransport(config *Config, transport Transport) *Client {
	return &Client{
		config:    config,
		transport: transport,
	}
}

// Manage runs a management command that is not bound to any database.
func (c *Client) Manage(ctx context.Context, command string) error {
	return c.transport.Manage(ctx, c.config.Endpoint, command)
}
