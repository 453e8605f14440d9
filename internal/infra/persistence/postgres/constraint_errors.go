package postgres

import (
	"strings"

	"vesselwatch/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes of the integrity violations the repositories translate.
const (
	sqlStateNotNull    = "23502"
	sqlStateForeignKey = "23503"
	sqlStateUnique     = "23505"
)

// constraintViolation is an integrity error reduced to its SQLSTATE and, when known, the constraint name.
type constraintViolation struct {
	code       string
	constraint string
}

// classifyConstraintError matches postgres errors by SQLSTATE. gorm's translated
// errors and driver messages cover the sqlite test database.
func classifyConstraintError(err error) (constraintViolation, bool) {
	if err == nil {
		return constraintViolation{}, false
	}

	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return constraintViolation{code: pgErr.Code, constraint: pgErr.ConstraintName}, true
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return constraintViolation{code: sqlStateUnique}, true
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return constraintViolation{code: sqlStateForeignKey}, true
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "duplicate key"), strings.Contains(errMsg, "unique constraint"):
		return constraintViolation{code: sqlStateUnique}, true
	case strings.Contains(errMsg, "foreign key"):
		return constraintViolation{code: sqlStateForeignKey}, true
	case strings.Contains(errMsg, "not null"), strings.Contains(errMsg, "null value"):
		return constraintViolation{code: sqlStateNotNull}, true
	}

	return constraintViolation{}, false
}

func isUniqueConstraintViolation(err error) bool {
	v, ok := classifyConstraintError(err)

	return ok && v.code == sqlStateUnique
}

func isForeignKeyConstraintViolation(err error) bool {
	v, ok := classifyConstraintError(err)

	return ok && v.code == sqlStateForeignKey
}

func isNotNullConstraintViolation(err error) bool {
	v, ok := classifyConstraintError(err)

	return ok && v.code == sqlStateNotNull
}
