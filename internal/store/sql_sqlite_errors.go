//go:build cgo

package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

func classifySQLiteError(err error) errorKind {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return errOther
	}

	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return errUniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return errForeignKeyViolation
	default:
		return errOther
	}
}
