package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for the constraints on the users table.
const (
	sqlStateUniqueViolation  = "23505"
	sqlStateNotNullViolation = "23502"
)

// isUniqueConstraintViolation reports a duplicate key, either translated by
// GORM (TranslateError), as a pgx error, or only as driver error text.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasSQLState(err, sqlStateUniqueViolation, "duplicate key")
}

func isNotNullConstraintViolation(err error) bool {
	return hasSQLState(err, sqlStateNotNullViolation, "null value")
}

func hasSQLState(err error, code, text string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, code) || strings.Contains(errMsg, text)
}
