package pgsql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: apperrors.ErrNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505", Message: "duplicate key"}, want: apperrors.ErrStoreRejected},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503", Message: "fk"}, want: apperrors.ErrStoreRejected},
		{name: "check violation wrapped", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23514"}), want: apperrors.ErrStoreRejected},
		{name: "numeric out of range", err: &pgconn.PgError{Code: "22003"}, want: apperrors.ErrStoreRejected},
		{name: "admin shutdown", err: &pgconn.PgError{Code: "57P01"}, want: apperrors.ErrStoreUnavailable},
		{name: "context canceled", err: context.Canceled, want: apperrors.ErrStoreUnavailable},
		{name: "connection refused", err: errors.New("dial tcp: connection refused"), want: apperrors.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			assert.True(t, errors.Is(got, tt.want), "got %v", got)
		})
	}

	assert.NoError(t, classifyError(nil))
}

func TestClassifyError_KeepsCause(t *testing.T) {
	got := classifyError(context.DeadlineExceeded)
	assert.True(t, errors.Is(got, context.DeadlineExceeded))
}

func TestStoreStatus(t *testing.T) {
	assert.Equal(t, 422, storeStatus(&pgconn.PgError{Code: "23505"}))
	assert.Equal(t, 503, storeStatus(errors.New("broken pipe")))
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	assert.Equal(t, ups, downs)
}
