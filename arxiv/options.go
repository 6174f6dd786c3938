package arxiv

import (
	"context"
	"net/http"
	"time"
)

type Option func(*Options)

type Options struct {
	Endpoint string
	Client   *http.Client
	Context  context.Context
}

func WithEndpoint(endpoint string) Option {
	return func(o *Options) {
		o.Endpoint = endpoint
	}
}

func WithClient(client *http.Client) Option {
	return func(o *Options) {
		o.Client = client
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Endpoint: defaultEndpoint,
		Client:   &http.Client{Timeout: 15 * time.Second},
		Context:  context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
