// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/l3montree-dev/launchpad/monitoring"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// sentryLogger forwards every database error to the error tracking
type sentryLogger struct {
	defaultLogger logger.Interface
}

func (s *sentryLogger) LogMode(level logger.LogLevel) logger.Interface {
	var newDefault logger.Interface
	if s.defaultLogger != nil {
		newDefault = s.defaultLogger.LogMode(level)
	}
	return &sentryLogger{defaultLogger: newDefault}
}

func (s *sentryLogger) Info(ctx context.Context, msg string, data ...any) {
	s.defaultLogger.Info(ctx, msg, data...)
}

func (s *sentryLogger) Warn(ctx context.Context, msg string, data ...any) {
	s.defaultLogger.Warn(ctx, msg, data...)
}

func (s *sentryLogger) Error(ctx context.Context, msg string, data ...any) {
	s.alert(msg, data...)
	s.defaultLogger.Error(ctx, msg, data...)
}

func (s *sentryLogger) alert(msg string, data ...any) {
	if len(data) == 0 {
		monitoring.Alert(msg, nil)
		return
	}
	if err, ok := data[0].(error); ok {
		s.alertErr(msg, err)
		return
	}
	monitoring.Alert(msg, fmt.Errorf("%v", data[0]))
}

func (s *sentryLogger) alertErr(msg string, err error) {
	// not found and unique violations are regular control flow for the booking code
	if errors.Is(err, gorm.ErrRecordNotFound) || IsDuplicateKeyError(err) {
		return
	}
	monitoring.Alert(msg, err)
}

func (s *sentryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if err != nil {
		s.alertErr("Database error", err)
	}
	s.defaultLogger.Trace(ctx, begin, fc, err)
}

func NewPgxConnPool(cfg PoolConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgx pool config: %w", err)
	}
	config.MaxConnIdleTime = cfg.ConnMaxIdleTime
	config.MaxConnLifetime = cfg.ConnMaxLifetime
	config.MaxConns = cfg.MaxOpenConns
	config.MinConns = cfg.MinConns
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	slog.Info("Database connection pool configured",
		"maxOpenConns", cfg.MaxOpenConns,
		"minConns", cfg.MinConns,
		"connMaxLifetime", cfg.ConnMaxLifetime,
		"connMaxIdleTime", cfg.ConnMaxIdleTime,
	)

	return pool, nil
}

// NewGormDB creates a GORM instance using an existing *pgxpool.Pool
func NewGormDB(existingPool *pgxpool.Pool) (*gorm.DB, error) {
	db := stdlib.OpenDBFromPool(existingPool)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{
		Logger: &sentryLogger{
			defaultLogger: logger.Default.LogMode(logger.Warn),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not open gorm connection: %w", err)
	}

	if err := gormDB.Use(tracing.NewPlugin()); err != nil {
		return nil, fmt.Errorf("could not register tracing plugin: %w", err)
	}

	return gormDB, nil
}

// NewFromEnv wires pool and gorm from the POSTGRES_* environment.
func NewFromEnv() (*gorm.DB, error) {
	cfg, err := GetPoolConfigFromEnv()
	if err != nil {
		return nil, err
	}
	pool, err := NewPgxConnPool(cfg)
	if err != nil {
		return nil, err
	}
	return NewGormDB(pool)
}

const uniqueViolation = "23505"

func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// IsConstraintViolation reports a unique violation of the named constraint.
func IsConstraintViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == constraint
}
