package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// errorKind is the driver-independent class of a failed statement.
type errorKind int

const (
	errOther errorKind = iota
	errUniqueViolation
	errForeignKeyViolation
)

func classifyPostgresError(err error) errorKind {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return errUniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return errForeignKeyViolation
	default:
		return errOther
	}
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
