package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"kunooz-ads/internal/config/configs"
)

// NewPostgresPool creates a pgxpool.Pool from cfg and verifies connectivity
// by pinging within cfg.PingTimeout. On ping failure the pool is closed and
// the error returned. The caller must close the returned pool.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolConf.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	ctxPing, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err = pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
