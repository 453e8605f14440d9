package impl

import (
	"time"
)

// retryDelay returns base * 2^retryNumber capped at maxDelay.
// retryNumber is the already incremented failure count.
func retryDelay(base, maxDelay time.Duration, retryNumber int) time.Duration {
	if base <= 0 {
		return 0
	}
	if retryNumber < 0 {
		retryNumber = 0
	}

	delay := base
	for i := 0; i < retryNumber; i++ {
		if maxDelay > 0 && delay >= maxDelay/2 {
			return maxDelay
		}
		delay *= 2
	}

	if maxDelay > 0 && delay > maxDelay {
		return maxDelay
	}

	return delay
}
