package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lionsacademy/register-backend/internal/config"
	"github.com/rs/zerolog"
)

const applicationName = "register-backend"

// NewPostgresPool creates and validates a PostgreSQL connection pool.
// Sessions run in the configured TIMEZONE so created_at values and any
// date arithmetic done in SQL agree with the calendar day used for sign-in.
func NewPostgresPool(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxDBConns
	poolCfg.HealthCheckPeriod = time.Minute
	poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	if cfg.Timezone != "" {
		poolCfg.ConnConfig.RuntimeParams["timezone"] = cfg.Timezone
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info().
		Int32("max_conns", cfg.MaxDBConns).
		Str("database", poolCfg.ConnConfig.Database).
		Str("timezone", cfg.Timezone).
		Msg("PostgreSQL connected")

	return pool, nil
}
