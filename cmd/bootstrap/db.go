package bootstrap

import (
	"context"

	"github.com/nivekneved/travellounge-sub002/internal/infra/db"
	"github.com/nivekneved/travellounge-sub002/internal/infra/notify"
	"github.com/nivekneved/travellounge-sub002/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
		NewLedgerFeed,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

// NewLedgerFeed ties the LISTEN relay to the app lifecycle so the SSE stream
// starts receiving as soon as the pool is up.
func NewLedgerFeed(lc fx.Lifecycle, pool *pgxpool.Pool) *notify.LedgerFeed {
	feed := notify.NewLedgerFeed(pool)

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go feed.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})

	return feed
}
