package port_client

import (
	"context"
	"net/http"
	"net/url"
)

const (
	MethodGet  = http.MethodGet
	MethodPost = http.MethodPost
)

type RequestOptions struct {
	URL    string
	Method string
	Query  url.Values
}

// Requester executes one API call and decodes the response into out.
type Requester interface {
	Request(ctx context.Context, opts RequestOptions, out any) error
}

// RequesterFunc adapts a plain function to Requester.
type RequesterFunc func(ctx context.Context, opts RequestOptions, out any) error

func (f RequesterFunc) Request(ctx context.Context, opts RequestOptions, out any) error {
	return f(ctx, opts, out)
}
