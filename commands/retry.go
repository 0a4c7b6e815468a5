package commands

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"
)

// retry is a bounded retry policy for idempotent Google Sheets calls. The
// delay schedule and sleep are injectable so the loop can be unit tested
// without real time or network.
type retry struct {
	MaxAttempts int
	Delay       func(attempt int) time.Duration
	Sleep       func(time.Duration)
}

var defaultRetry = retry{
	MaxAttempts: 5,
	Delay:       exponential(2 * time.Second),
}

// Do invokes f until it succeeds, fails with a non-transient error, or the
// attempt budget is exhausted. Only errors for which transient returns true
// are retried - anything else propagates unchanged on the first occurrence.
func (r retry) Do(f func() error, transient func(error) bool) error {
	attempts := r.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	sleep := r.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = f(); err == nil {
			return nil
		}

		if !transient(err) {
			return err
		}

		if attempt < attempts {
			delay := r.Delay(attempt)
			warnf("Google Sheets unavailable (%v) - retrying in %v (attempt %v of %v)", err, delay, attempt, attempts)
			sleep(delay)
		}
	}

	return fmt.Errorf("upload abandoned after %v attempts (%w)", attempts, err)
}

func exponential(base time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return base << (attempt - 1)
	}
}

// isTransient classifies an error as retryable. Only HTTP 503 from the Sheets
// API qualifies - authentication failures, invalid ranges and quota errors are
// not recoverable by trying again.
func isTransient(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusServiceUnavailable
	}

	return false
}
