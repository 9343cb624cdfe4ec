package postgres

import (
	"poolscout/internal/domain/repository"
	"poolscout/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL error codes the repositories react to.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasPgCode(err, pgUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return hasPgCode(err, pgForeignKeyViolation)
}

func isNotNullConstraintViolation(err error) bool {
	return hasPgCode(err, pgNotNullViolation)
}

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}

	return false
}

// writeError maps constraint violations of a write to repository errors.
func writeError(err error, msg string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return errors.Wrap(repository.ErrDuplicateKey, constraintName(err))
	case isForeignKeyConstraintViolation(err), isNotNullConstraintViolation(err):
		return errors.Wrapf(err, "%s: constraint violated", msg)
	default:
		return errors.Wrap(err, msg)
	}
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}

	return "unique constraint"
}
