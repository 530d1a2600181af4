package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemp := errors.New("temporary")
	errFatal := errors.New("fatal")
	cfg := RetryConfig{MaxAttempts: 4, InitialDelay: time.Millisecond, Multiplier: 2}

	testCases := []struct {
		name      string
		failures  []error
		permanent []error
		wantCalls int
		wantErr   error
	}{
		{name: "first attempt", wantCalls: 1},
		{name: "succeeds after retries", failures: []error{errTemp, errTemp}, wantCalls: 3},
		{name: "attempts exhausted", failures: []error{errTemp, errTemp, errTemp, errTemp, errTemp}, wantCalls: 4, wantErr: errTemp},
		{name: "permanent error stops", failures: []error{errFatal}, permanent: []error{errFatal}, wantCalls: 1, wantErr: errFatal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := Retry(context.Background(), cfg, func() error {
				calls++
				if calls <= len(tc.failures) {
					return tc.failures[calls-1]
				}
				return nil
			}, tc.permanent...)

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := Retry(ctx, RetryConfig{MaxAttempts: 5, InitialDelay: time.Second}, func() error {
		calls++
		return errors.New("down")
	})
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}
