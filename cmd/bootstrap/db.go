package bootstrap

import (
	"context"
	"log/slog"

	"ticketqueen/internal/infra/db"
	"ticketqueen/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// DBModule is only part of the graph when STORE_DRIVER=postgres.
var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database pool ready",
		slog.String("host", cfg.DB.Host),
		slog.String("database", cfg.DB.DBName),
		slog.Int("max_conns", int(pool.Config().MaxConns)),
	)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("closing database pool",
				slog.Int("acquired_conns", int(stat.AcquiredConns())),
				slog.Int64("acquire_count", stat.AcquireCount()),
			)
			cleanup()
			return nil
		},
	})

	return pool, nil
}
