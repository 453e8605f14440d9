package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassifyConstraintError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		code       string
		constraint string
		ok         bool
	}{
		{
			name:       "postgres unique violation keeps constraint name",
			err:        errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "idx_border_points_code_sequence"}, "insert"),
			code:       sqlStateUnique,
			constraint: "idx_border_points_code_sequence",
			ok:         true,
		},
		{
			name: "postgres foreign key violation",
			err:  &pgconn.PgError{Code: "23503", ConstraintName: "fk_notifications_type"},
			code: sqlStateForeignKey, constraint: "fk_notifications_type", ok: true,
		},
		{name: "gorm translated duplicate", err: gorm.ErrDuplicatedKey, code: sqlStateUnique, ok: true},
		{name: "gorm translated foreign key", err: gorm.ErrForeignKeyViolated, code: sqlStateForeignKey, ok: true},
		{name: "sqlite unique message", err: errors.New("UNIQUE constraint failed: border_points.boundary_code"), code: sqlStateUnique, ok: true},
		{name: "sqlite not null message", err: errors.New("NOT NULL constraint failed: notifications.ship_id"), code: sqlStateNotNull, ok: true},
		{name: "unrelated error", err: errors.New("connection reset"), ok: false},
		{name: "nil", err: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := classifyConstraintError(tt.err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.code, v.code)
			assert.Equal(t, tt.constraint, v.constraint)
		})
	}
}

func TestConstraintPredicates(t *testing.T) {
	unique := &pgconn.PgError{Code: sqlStateUnique}
	assert.True(t, isUniqueConstraintViolation(unique))
	assert.False(t, isForeignKeyConstraintViolation(unique))
	assert.False(t, isNotNullConstraintViolation(unique))

	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: sqlStateNotNull}))
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: sqlStateForeignKey}))
	assert.False(t, isUniqueConstraintViolation(nil))
}
