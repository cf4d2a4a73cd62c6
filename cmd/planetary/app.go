package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/planetary/planetary-api/internal/infrastructure/config"
	"github.com/planetary/planetary-api/internal/infrastructure/db/redis"
	"github.com/planetary/planetary-api/internal/infrastructure/db/sqlstore"
	"github.com/planetary/planetary-api/pkg/logger"
)

// app holds the process-wide resources every command needs.
type app struct {
	cfg *config.Config
	log zerolog.Logger
	db  *sqlx.DB
	rdb *goredis.Client
}

// openApp loads configuration, initialises logging and opens the migrated
// database. Redis is only connected when withRedis is set and an address is
// configured.
func openApp(ctx context.Context, withRedis bool) (*app, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "planetary-api",
	})

	db, err := sqlstore.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	if err := sqlstore.Migrate(ctx, db, cfg.Database.Driver); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Info().Str("driver", cfg.Database.Driver).Msg("database ready")

	a := &app{cfg: cfg, log: log, db: db}

	if withRedis && cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		a.rdb = rdb
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	} else if withRedis {
		log.Warn().Msg("REDIS_ADDR not set, password recovery is not throttled")
	}

	return a, nil
}

func (a *app) Close() error {
	var errs []error
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if err := a.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close database: %w", err))
	}
	return errors.Join(errs...)
}

// closeAndLog is Close for defer sites.
func (a *app) closeAndLog() {
	if err := a.Close(); err != nil {
		a.log.Error().Err(err).Msg("failed to release resources")
	}
}
