package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	err := fmt.Errorf("insert patient: %w", &pgconn.PgError{Code: "23505", ConstraintName: "patients_patient_id_key"})

	assert.True(t, IsDuplicateConstraintError(err, "patients_patient_id_key"))
	assert.True(t, IsDuplicateConstraintError(err, ""))
	assert.False(t, IsDuplicateConstraintError(err, "users_username_key"))
	assert.False(t, IsDuplicateConstraintError(errors.New("boom"), ""))
}

func TestIsForeignKeyError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23503", ConstraintName: "prescriptions_patient_id_fkey"})

	name, ok := IsForeignKeyError(err)
	assert.True(t, ok)
	assert.Equal(t, "prescriptions_patient_id_fkey", name)

	_, ok = IsForeignKeyError(&pgconn.PgError{Code: "23505"})
	assert.False(t, ok)
}
