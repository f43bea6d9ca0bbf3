package mount

import (
	"context"
	"time"
)

// Default retry policy for device operations.
const (
	DefaultRetryCount = 3
	DefaultRetryDelay = 500 * time.Millisecond
)

// RetryPolicy bounds how a fallible device action is reattempted.
// Count is the total number of attempts, not extra retries beyond the
// first try.
type RetryPolicy struct {
	Count int
	Delay time.Duration
}

// DefaultRetryPolicy returns the standard device retry policy.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Count: DefaultRetryCount, Delay: DefaultRetryDelay}
}

// normalized clamps the policy to at least one attempt.
func (p RetryPolicy) normalized() RetryPolicy {
	if p.Count < 1 {
		p.Count = 1
	}
	if p.Delay < 0 {
		p.Delay = 0
	}
	return p
}

// retry invokes action up to policy.Count times, waiting policy.Delay
// between attempts, stopping at the first success. The wait yields to
// the scheduler and aborts on context cancellation. Returns nil on
// success, the last action error on exhaustion, or the context error
// if cancelled mid-wait.
//
// onAttempt, if non-nil, is called after each attempt with the 1-based
// attempt number and its outcome.
func retry(ctx context.Context, policy RetryPolicy, action func(context.Context) error, onAttempt func(attempt int, err error)) error {
	policy = policy.normalized()

	var err error
	for attempt := 1; attempt <= policy.Count; attempt++ {
		err = action(ctx)
		if onAttempt != nil {
			onAttempt(attempt, err)
		}
		if err == nil {
			return nil
		}
		if attempt == policy.Count {
			break
		}

		select {
		case <-time.After(policy.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
