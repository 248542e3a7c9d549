package retry

import (
	"errors"
	"net"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// backoffIntervals are the waits between retry attempts.
var backoffIntervals = []time.Duration{1 * time.Second, 3 * time.Second, 5 * time.Second}

// IsRetriableNetError reports whether err looks like a transient
// network failure.
func IsRetriableNetError(err error) bool {
	var netErr net.Error
	if !errors.As(err, &netErr) {
		return false
	}
	if netErr.Timeout() {
		return true
	}
	lowerMsg := strings.ToLower(err.Error())
	return strings.Contains(lowerMsg, "connection refused") ||
		strings.Contains(lowerMsg, "connection reset") ||
		strings.Contains(lowerMsg, "network is unreachable")
}

// IsRetriablePGError reports whether err is a PostgreSQL connection
// exception (SQLSTATE class 08).
func IsRetriablePGError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08"
	}
	return false
}

// DoWithRetry calls fn up to len(backoffIntervals)+1 times, backing
// off between attempts. Non-transient errors return immediately.
func DoWithRetry(fn func() error) error {
	var lastErr error
	for i := 0; i <= len(backoffIntervals); i++ {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if !IsRetriableNetError(err) && !IsRetriablePGError(err) {
			return err
		}

		if i < len(backoffIntervals) {
			time.Sleep(backoffIntervals[i])
		}
	}
	return lastErr
}
