// Package pgerr maps PostgreSQL driver failures onto the errs taxonomy so that callers
// can classify them without importing driver packages.
package pgerr

import (
	"context"
	"errors"

	"logistics/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes that surface as errs.ErrPersistenceTimeout.
const (
	codeLockNotAvailable     = "55P03"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeQueryCanceled        = "57014"

	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// Translate wraps err for operation. Lock waits, deadlocks, serialization failures and
// deadlines become timeout persistence errors; constraint violations become invalid
// values; anything else is a plain persistence error. nil stays nil.
func Translate(operation string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewPersistenceTimeoutError(operation, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeLockNotAvailable, codeSerializationFailure, codeDeadlockDetected, codeQueryCanceled:
			return errs.NewPersistenceTimeoutError(operation, err)
		case codeForeignKeyViolation, codeCheckViolation:
			param := pgErr.ColumnName
			if param == "" {
				param = pgErr.ConstraintName
			}
			return errs.NewValueIsInvalidErrorWithCause(param, errors.New(pgErr.Detail))
		}
	}

	return errs.NewPersistenceError(operation, err)
}
