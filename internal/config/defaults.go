// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultTokenTTL        = time.Hour
	DefaultBcryptCost      = 10
	DefaultHTTPAddress     = ":3000"
	DefaultDBDriver        = DriverPostgres
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultLogLevel        = "info"
	DefaultEnvFile         = ".env"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TTL: DefaultTokenTTL,
		},
		Security: Security{
			BcryptCost: DefaultBcryptCost,
		},
		Storage: Storage{
			DB: DB{
				Driver: DefaultDBDriver,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
