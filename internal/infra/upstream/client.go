// Package upstream forwards gateway requests to the generative-language service.
package upstream

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"languagebot/config"
	domainerrors "languagebot/internal/domain/errors"
	"languagebot/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxResponseBytes = 32 << 20

// Headers that describe a single transport hop and must not be forwarded.
var hopByHopHeaders = map[string]bool{
	"connection":          true,
	"keep-alive":          true,
	"proxy-authenticate":  true,
	"proxy-authorization": true,
	"proxy-connection":    true,
	"te":                  true,
	"trailer":             true,
	"transfer-encoding":   true,
	"upgrade":             true,
}

// Caller-identifying or transport-owned headers that never reach the upstream.
// Accept-Encoding is dropped so the transport negotiates and decodes compression itself.
var strippedHeaders = map[string]bool{
	"host":            true,
	"cookie":          true,
	"authorization":   true,
	"content-length":  true,
	"accept-encoding": true,
}

// Client implements service.UpstreamClient over net/http.
type Client struct {
	baseURL          *url.URL
	credentialHeader string
	httpClient       *http.Client
	logger           *slog.Logger
}

// ClientParams holds dependencies for the upstream client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient builds the client from upstream configuration.
func NewClient(params ClientParams) (service.UpstreamClient, error) {
	cfg := params.Config.Upstream

	return New(cfg.BaseURL, cfg.CredentialHeader, cfg.Timeout, params.Logger)
}

// New creates a client for baseURL. Redirects are returned to the caller, never followed.
func New(baseURL, credentialHeader string, timeout time.Duration, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse upstream base URL")
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, errors.Errorf("upstream base URL must be http or https, got %q", base.Scheme)
	}
	if base.Host == "" {
		return nil, errors.New("upstream base URL has no host")
	}
	if credentialHeader == "" {
		return nil, errors.New("upstream credential header is required")
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: time.Second,
	}

	return &Client{
		baseURL:          base,
		credentialHeader: http.CanonicalHeaderKey(credentialHeader),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: logger,
	}, nil
}

// Do implements service.UpstreamClient.
func (c *Client) Do(ctx context.Context, in *service.UpstreamRequest) (*service.UpstreamResponse, error) {
	target, err := c.ResolveURL(in.Path, in.RawQuery)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, in.Method, target.String(), bytes.NewReader(in.Body))
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidUpstreamPath.WithDetails(err.Error()))
	}
	req.Header = c.FilterHeaders(in.Header)
	req.Header.Set(c.credentialHeader, in.Credential)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Upstream request failed",
			slog.String("method", in.Method),
			slog.String("path", target.Path),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewUpstreamError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		c.logger.Error("Reading upstream response failed", slog.Any("error", err))

		return nil, domainerrors.NewUpstreamError(err)
	}
	if len(body) > maxResponseBytes {
		return nil, domainerrors.NewUpstreamError(errors.Errorf("upstream response exceeds %d bytes", maxResponseBytes))
	}

	header := make(http.Header)
	if contentType := resp.Header.Get("Content-Type"); contentType != "" {
		header.Set("Content-Type", contentType)
	}

	return &service.UpstreamResponse{
		StatusCode: resp.StatusCode,
		Header:     header,
		Body:       body,
	}, nil
}

// ResolveURL joins path onto the base URL. Scheme and host always come from
// the base URL; dot-dot segments, backslashes and malformed escapes are rejected.
func (c *Client) ResolveURL(path, rawQuery string) (*url.URL, error) {
	if strings.Contains(path, `\`) {
		return nil, errors.WithStack(domainerrors.ErrInvalidUpstreamPath.WithDetails("backslash in path"))
	}

	unescaped, err := url.PathUnescape(path)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidUpstreamPath.WithDetails("malformed escape"))
	}
	if strings.Contains(unescaped, `\`) {
		return nil, errors.WithStack(domainerrors.ErrInvalidUpstreamPath.WithDetails("backslash in path"))
	}
	for _, segment := range strings.Split(unescaped, "/") {
		if segment == ".." {
			return nil, errors.WithStack(domainerrors.ErrInvalidUpstreamPath.WithDetails("dot-dot segment"))
		}
	}

	target := *c.baseURL
	target.Path = singleJoiningSlash(c.baseURL.Path, unescaped)
	target.RawPath = singleJoiningSlash(c.baseURL.EscapedPath(), path)
	target.RawQuery = rawQuery
	target.Fragment = ""
	target.RawFragment = ""

	return &target, nil
}

// FilterHeaders copies inbound headers minus hop-by-hop, caller-identifying and
// credential headers. Headers named in Connection are treated as hop-by-hop too.
func (c *Client) FilterHeaders(in http.Header) http.Header {
	connectionScoped := make(map[string]bool)
	for _, value := range in.Values("Connection") {
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				connectionScoped[strings.ToLower(name)] = true
			}
		}
	}

	out := make(http.Header, len(in))
	for key, values := range in {
		lower := strings.ToLower(key)
		if hopByHopHeaders[lower] || strippedHeaders[lower] || connectionScoped[lower] {
			continue
		}
		if strings.EqualFold(key, c.credentialHeader) {
			continue
		}
		for _, value := range values {
			out.Add(key, value)
		}
	}

	return out
}

// singleJoiningSlash joins two URL paths with a single slash.
func singleJoiningSlash(a, b string) string {
	aSlash := strings.HasSuffix(a, "/")
	bSlash := strings.HasPrefix(b, "/")
	switch {
	case aSlash && bSlash:
		return a + b[1:]
	case !aSlash && !bSlash:
		if b == "" {
			return a
		}

		return a + "/" + b
	}

	return a + b
}
