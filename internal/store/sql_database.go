// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/migrations"
)

// DB is a database/sql pool bound to one SQL dialect. Repositories build
// their queries through it so the same code serves Postgres and SQLite.
type DB struct {
	*sql.DB
	dialect dialect
	logger  *logger.Logger
}

// dialect captures what differs between the supported drivers.
type dialect struct {
	driver      string
	placeholder sq.PlaceholderFormat
	// contains builds a case-insensitive substring predicate.
	contains func(column, value string) sq.Sqlizer
	classify func(err error) errorKind
}

var (
	postgresDialect = dialect{
		driver:      config.DriverPostgres,
		placeholder: sq.Dollar,
		contains: func(column, value string) sq.Sqlizer {
			return sq.ILike{column: "%" + value + "%"}
		},
		classify: classifyPostgresError,
	}

	// SQLite LIKE is case-insensitive for ASCII.
	sqliteDialect = dialect{
		driver:      config.DriverSQLite,
		placeholder: sq.Question,
		contains: func(column, value string) sq.Sqlizer {
			return sq.Like{column: "%" + value + "%"}
		},
		classify: classifySQLiteError,
	}
)

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case config.DriverPostgres:
		return postgresDialect, nil
	case config.DriverSQLite:
		return sqliteDialect, nil
	default:
		return dialect{}, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// NewDB wraps an already opened pool. driver selects the SQL dialect.
func NewDB(conn *sql.DB, driver string, log *logger.Logger) (*DB, error) {
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}

	return &DB{DB: conn, dialect: d, logger: log}, nil
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Driver returns the database/sql driver name.
func (db *DB) Driver() string {
	return db.dialect.driver
}

// Migrate applies the embedded schema migrations for the database dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect.driver)
}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.dialect.placeholder)
}
