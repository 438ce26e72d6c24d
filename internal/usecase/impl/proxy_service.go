package impl

import (
	"context"
	"log/slog"
	"time"

	"languagebot/config"
	deliverycontext "languagebot/internal/delivery/context"
	domainerrors "languagebot/internal/domain/errors"
	"languagebot/internal/domain/service"
	"languagebot/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	credentialSourceUser     = "user"
	credentialSourceFallback = "fallback"
)

// proxyService implements the ProxyUsecase interface.
type proxyService struct {
	vault          usecase.CredentialVault
	upstream       service.UpstreamClient
	metrics        service.ProxyMetrics
	fallbackAPIKey string
	now            func() time.Time
	logger         *slog.Logger
}

// ProxyServiceParams holds dependencies for ProxyService, injected by Fx.
type ProxyServiceParams struct {
	fx.In

	Vault    usecase.CredentialVault
	Upstream service.UpstreamClient
	Metrics  service.ProxyMetrics
	Config   *config.Config
	Logger   *slog.Logger
}

// NewProxyService is the constructor for proxyService.
func NewProxyService(params ProxyServiceParams) usecase.ProxyUsecase {
	fallback := ""
	if params.Config != nil && params.Config.Upstream != nil {
		fallback = params.Config.Upstream.FallbackAPIKey
	}

	return &proxyService{
		vault:          params.Vault,
		upstream:       params.Upstream,
		metrics:        params.Metrics,
		fallbackAPIKey: fallback,
		now:            time.Now,
		logger:         params.Logger,
	}
}

// Forward relays the request with the user's key, falling back to the
// operator key. Upstream statuses, including errors, are returned unchanged.
func (srv *proxyService) Forward(ctx context.Context, input *usecase.ForwardInput) (*usecase.ForwardOutput, error) {
	apiKey, source, err := srv.resolveCredential(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	start := srv.now()
	resp, err := srv.upstream.Do(ctx, &service.UpstreamRequest{
		Method:     input.Method,
		Path:       input.Path,
		RawQuery:   input.RawQuery,
		Header:     input.Header,
		Body:       input.Body,
		Credential: apiKey,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidUpstreamPath) {
			srv.metrics.ObserveRequest(service.ProxyOutcomeInvalidPath)
			srv.log(ctx).Warn("Rejected upstream path",
				slog.Int64("user_id", input.UserID),
				slog.String("path", input.Path),
			)

			return nil, err
		}

		srv.metrics.ObserveUpstreamDuration(srv.now().Sub(start))
		srv.metrics.ObserveRequest(service.ProxyOutcomeUpstreamFail)

		return nil, err
	}

	elapsed := srv.now().Sub(start)
	srv.metrics.ObserveUpstreamDuration(elapsed)
	srv.metrics.ObserveRequest(service.ProxyOutcomeRelayed)

	srv.log(ctx).Info("Relayed upstream request",
		slog.Int64("user_id", input.UserID),
		slog.String("method", input.Method),
		slog.String("path", input.Path),
		slog.Int("status", resp.StatusCode),
		slog.String("credential_source", source),
		slog.Duration("duration", elapsed),
	)

	return &usecase.ForwardOutput{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       resp.Body,
	}, nil
}

func (srv *proxyService) resolveCredential(ctx context.Context, userID int64) (string, string, error) {
	apiKey, found, err := srv.vault.Get(ctx, userID)
	if err != nil {
		srv.metrics.ObserveRequest(service.ProxyOutcomeVaultFail)

		return "", "", err
	}
	if found && apiKey != "" {
		return apiKey, credentialSourceUser, nil
	}

	if srv.fallbackAPIKey != "" {
		return srv.fallbackAPIKey, credentialSourceFallback, nil
	}

	srv.metrics.ObserveRequest(service.ProxyOutcomeNoCredential)

	return "", "", errors.WithStack(domainerrors.ErrNoCredential)
}

func (srv *proxyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}
