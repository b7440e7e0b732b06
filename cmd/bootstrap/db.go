package bootstrap

import (
	"context"
	"log/slog"

	"gym-booking/internal/infra/db"
	"gym-booking/internal/pkg/config"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the booking store pool. Availability checks and booking writes
// share it, so the pool is re-pinged on start in case the database went away
// while other modules were being constructed.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, errors.Wrapf(err, "connect booking store %s/%s", cfg.DB.Host, cfg.DB.DBName)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := pool.Ping(ctx); err != nil {
				return errors.Wrap(err, "booking store unreachable on start")
			}
			stat := pool.Stat()
			slog.Info("booking store ready",
				"host", cfg.DB.Host,
				"db", cfg.DB.DBName,
				"max_conns", stat.MaxConns(),
			)
			return nil
		},
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
