package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"no rows", sql.ErrNoRows, false},
		{"deadline", context.DeadlineExceeded, false},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"connection exception class", &pgconn.PgError{Code: "08006"}, true},
		{"too many connections class", &pgconn.PgError{Code: "53300"}, true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"connection refused message", errors.New("dial tcp: connection refused"), true},
		{"plain error", errors.New("syntax error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestRetryWithBackoff_DisabledRunsOnce(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), DefaultRetryConfig(), func() error {
		calls++
		return errors.New("connection refused")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryWithBackoff_RetriesTransientErrors(t *testing.T) {
	cfg := DefaultRetryConfig()
	cfg.EnableRetry = true
	cfg.InitialDelay = time.Millisecond

	calls := 0
	err := RetryWithBackoff(context.Background(), cfg, func() error {
		calls++
		if calls < 3 {
			return errors.New("connection reset by peer")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryWithBackoff_StopsOnPermanentError(t *testing.T) {
	cfg := DefaultRetryConfig()
	cfg.EnableRetry = true
	cfg.InitialDelay = time.Millisecond

	calls := 0
	err := RetryWithBackoff(context.Background(), cfg, func() error {
		calls++
		return &pgconn.PgError{Code: "23505"}
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
