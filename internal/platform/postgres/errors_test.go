package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oceanvibes209/LoneWolfFitness-Server/internal/store"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name    string
		input   error
		wantErr error
	}{
		{
			name:    "nil error",
			input:   nil,
			wantErr: nil,
		},
		{
			name:    "no rows",
			input:   sql.ErrNoRows,
			wantErr: store.ErrNotFound,
		},
		{
			name:    "unique violation",
			input:   &pgconn.PgError{Code: uniqueViolationCode},
			wantErr: store.ErrDuplicate,
		},
		{
			name:    "foreign key violation",
			input:   &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "fk_user"},
			wantErr: store.ErrInvalidRecord,
		},
		{
			name:    "check violation",
			input:   &pgconn.PgError{Code: checkViolationCode, ConstraintName: "chk_sets"},
			wantErr: store.ErrInvalidRecord,
		},
		{
			name:    "not null violation",
			input:   &pgconn.PgError{Code: notNullViolationCode, ColumnName: "exercise"},
			wantErr: store.ErrInvalidRecord,
		},
		{
			name:    "invalid text representation",
			input:   &pgconn.PgError{Code: invalidTextRepresentationCode},
			wantErr: store.ErrInvalidRecord,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MapError(tc.input)
			if tc.wantErr == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.wantErr)
		})
	}
}

func TestMapError_UnknownErrorPassesThrough(t *testing.T) {
	err := fmt.Errorf("connection reset")
	assert.Equal(t, err, MapError(err))
}

func TestMapError_WrappedPgError(t *testing.T) {
	wrapped := fmt.Errorf("exec failed: %w", &pgconn.PgError{Code: uniqueViolationCode})
	assert.ErrorIs(t, MapError(wrapped), store.ErrDuplicate)
}

func TestCheckRowsAffected(t *testing.T) {
	require.NoError(t, CheckRowsAffected(sqlmock.NewResult(0, 1), store.ErrWorkoutNotFound))

	err := CheckRowsAffected(sqlmock.NewResult(0, 0), store.ErrWorkoutNotFound)
	assert.ErrorIs(t, err, store.ErrWorkoutNotFound)

	err = CheckRowsAffected(sqlmock.NewResult(0, 0), nil)
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.Error(t, CheckRowsAffected(nil, nil))
}
