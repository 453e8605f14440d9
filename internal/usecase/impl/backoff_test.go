package impl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryDelay(t *testing.T) {
	base := 30 * time.Second
	maxDelay := time.Hour

	tests := []struct {
		name        string
		retryNumber int
		want        time.Duration
	}{
		{name: "first failure doubles base", retryNumber: 1, want: time.Minute},
		{name: "zero retries is base", retryNumber: 0, want: 30 * time.Second},
		{name: "third failure", retryNumber: 3, want: 4 * time.Minute},
		{name: "capped", retryNumber: 10, want: time.Hour},
		{name: "huge exponent does not overflow", retryNumber: 200, want: time.Hour},
		{name: "negative treated as zero", retryNumber: -1, want: 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retryDelay(base, maxDelay, tt.retryNumber))
		})
	}
}

func TestRetryDelay_NoBase(t *testing.T) {
	assert.Equal(t, time.Duration(0), retryDelay(0, time.Hour, 3))
}
