package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "learnings_user_id_learning_date_key"}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(fmt.Errorf("insert learning: %w", unique)))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: codeForeignKeyViolation}))
	assert.False(t, isUniqueConstraintViolation(assert.AnError))
	assert.False(t, isUniqueConstraintViolation(nil))
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: codeForeignKeyViolation, ConstraintName: "learnings_user_id_fkey"}

	assert.True(t, isForeignKeyConstraintViolation(fk))
	assert.True(t, isForeignKeyConstraintViolation(fmt.Errorf("insert learning: %w", fk)))
	assert.False(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: codeUniqueViolation}))
	assert.False(t, isForeignKeyConstraintViolation(assert.AnError))
}
