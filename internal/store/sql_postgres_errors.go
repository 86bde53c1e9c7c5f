package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgresErrorClassifier treats connection exceptions (class 08), rolled
// back transactions (class 40) and a server that is starting up or out of
// connection slots as transient. Constraint, data and syntax errors are
// final, as is anything that is not a *pgconn.PgError.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// retryablePgCodes lists transient codes outside the retryable classes.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.CannotConnectNow:   {},
	pgerrcode.TooManyConnections: {},
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError classifies a single server error by its SQLSTATE.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	if pgerrcode.IsConnectionException(code) || pgerrcode.IsTransactionRollback(code) {
		return Retryable
	}
	if _, ok := retryablePgCodes[code]; ok {
		return Retryable
	}

	return NonRetryable
}
