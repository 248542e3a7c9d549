package retry

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoWithRetryStopsOnPermanentError(t *testing.T) {
	calls := 0
	err := DoWithRetry(func() error {
		calls++
		return errors.New("permanent failure")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls, "permanent errors must not be retried")
}

func TestDoWithRetrySucceedsFirstTry(t *testing.T) {
	calls := 0
	err := DoWithRetry(func() error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestIsRetriablePGError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retriable bool
	}{
		{
			name:      "connection exception",
			err:       &pgconn.PgError{Code: "08006"},
			retriable: true,
		},
		{
			name:      "unique violation",
			err:       &pgconn.PgError{Code: "23505"},
			retriable: false,
		},
		{
			name:      "plain error",
			err:       errors.New("nope"),
			retriable: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.retriable, IsRetriablePGError(tc.err))
		})
	}
}

func TestIsRetriableNetErrorPlainError(t *testing.T) {
	assert.False(t, IsRetriableNetError(errors.New("not a net error")))
}
