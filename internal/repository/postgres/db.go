// internal/repository/postgres/db.go
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes we translate into the application error taxonomy.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

func isPgErr(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func isUniqueViolation(err error) bool     { return isPgErr(err, uniqueViolation) }
func isForeignKeyViolation(err error) bool { return isPgErr(err, foreignKeyViolation) }
func isCheckViolation(err error) bool      { return isPgErr(err, checkViolation) }
