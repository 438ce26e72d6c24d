package revocation

import (
	"context"
	"log/slog"

	"languagebot/config"
	"languagebot/internal/domain/constants"
	"languagebot/internal/domain/lifecycle"
	"languagebot/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for the revocation store, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStore selects the revocation store configured by session.store.
func NewStore(params StoreParams) (repository.SessionRevocationRepository, error) {
	switch params.Config.Session.Store {
	case "", constants.SessionStoreMemory:
		params.Logger.Info("Using in-memory session revocation store")

		store := NewMemoryStore(defaultSweepInterval)
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return store.Close()
			},
		})

		return store, nil

	case constants.SessionStoreRedis:
		if params.Config.Redis == nil || params.Config.Redis.URL == "" {
			return nil, errors.New("redis.url is required for the redis session store")
		}

		client, err := NewRedisClient(params.Config.Redis.URL)
		if err != nil {
			return nil, err
		}

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(pingCtx).Err(); err != nil {
					return errors.Wrap(err, "pinging redis")
				}
				params.Logger.Info("Connected to redis session revocation store")

				return nil
			},
			OnStop: func(context.Context) error {
				return errors.WithStack(client.Close())
			},
		})

		return NewRedisStore(client), nil

	default:
		return nil, errors.Errorf("unknown session store: %s", params.Config.Session.Store)
	}
}

// NewRedisClient creates a client from a redis:// URL.
func NewRedisClient(rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, errors.Wrap(err, "parsing redis URL")
	}

	return redis.NewClient(opts), nil
}
