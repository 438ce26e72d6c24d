package usecase

import (
	"context"
	"net/http"
)

// --- Input DTOs ---

// ForwardInput describes a client request to relay upstream on behalf of UserID.
type ForwardInput struct {
	UserID   int64
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// --- Output DTOs ---

// ForwardOutput is the upstream answer, relayed as-is.
type ForwardOutput struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ProxyUsecase relays requests to the generative-language service with the
// caller's stored credential, or the operator fallback key.
type ProxyUsecase interface {
	Forward(ctx context.Context, input *ForwardInput) (*ForwardOutput, error)
}
