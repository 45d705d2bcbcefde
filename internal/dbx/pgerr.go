package dbx

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the repositories react to.
const (
	codeUniqueViolation = "23505"
	codeUndefinedObject = "42704"
	codeQueryCanceled   = "57014"
)

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation reports whether err is a Postgres unique constraint failure.
func IsUniqueViolation(err error) bool {
	return sqlState(err) == codeUniqueViolation
}

// IsIndexUnavailable reports whether a sorted query failed because the
// index backing its ORDER BY is missing or the planner fell back to a scan
// that hit the statement timeout.
func IsIndexUnavailable(err error) bool {
	switch sqlState(err) {
	case codeUndefinedObject, codeQueryCanceled:
		return true
	}
	return false
}
