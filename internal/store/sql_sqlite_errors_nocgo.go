//go:build !cgo

package store

// go-sqlite3 is a stub without cgo, so there is no driver error to inspect.
func classifySQLiteError(error) errorKind {
	return errOther
}
