package service

import (
	"context"
	"net/http"
)

// UpstreamRequest is an outbound call to the generative-language service.
// Body is forwarded unmodified and never inspected.
type UpstreamRequest struct {
	Method     string
	Path       string // Path below the configured base URL, as received (escaped form).
	RawQuery   string
	Header     http.Header
	Body       []byte
	Credential string
}

// UpstreamResponse is the relayed upstream answer, whatever its status.
type UpstreamResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// UpstreamClient sends requests to the configured upstream host only.
type UpstreamClient interface {
	// Do returns ErrInvalidUpstreamPath for paths escaping the base URL and an
	// UpstreamError when no response was received.
	Do(ctx context.Context, req *UpstreamRequest) (*UpstreamResponse, error)
}
