package consumer

import "time"

// SetRetryBackoff shortens the retry schedule for tests and returns a restore func.
func SetRetryBackoff(initial, maxWait time.Duration) func() {
	prevInitial, prevMax := retryBackoff, maxRetryBackoff
	retryBackoff, maxRetryBackoff = initial, maxWait
	return func() {
		retryBackoff, maxRetryBackoff = prevInitial, prevMax
	}
}
