package postgres

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

// Postgres error codes the repositories translate into domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// statementBuilder renders $n placeholders for lib/pq.
var statementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func pgErrorCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

type rowScanner interface {
	Scan(dest ...any) error
}
