package api

import (
	"fmt"
	"net/http"

	ghapi "github.com/cli/go-gh/v2/pkg/api"
)

const (
	// host is the only GitHub host these tools talk to
	host = "github.com"

	acceptHeader = "application/vnd.github+json"
	apiVersion   = "2022-11-28"
)

// Client wraps the go-gh REST client with the headers and helpers the
// membership tools need.
type Client struct {
	rest *ghapi.RESTClient
}

// Option configures a Client
type Option func(*clientOptions)

type clientOptions struct {
	transport http.RoundTripper
}

// WithTransport overrides the underlying HTTP transport. Tests use this to
// point the client at a local server.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *clientOptions) {
		o.transport = rt
	}
}

// NewClient builds a REST client that authenticates every request with the
// given token. The token is attached as a header and never logged.
func NewClient(token string, opts ...Option) (*Client, error) {
	options := clientOptions{transport: http.DefaultTransport}
	for _, opt := range opts {
		opt(&options)
	}

	rest, err := ghapi.NewRESTClient(ghapi.ClientOptions{
		Host:      host,
		AuthToken: token,
		Transport: options.transport,
		Headers: map[string]string{
			"Accept":               acceptHeader,
			"Authorization":        "Bearer " + token,
			"X-GitHub-Api-Version": apiVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}

	return &Client{rest: rest}, nil
}
