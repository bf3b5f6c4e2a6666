package dictionary

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_ZeroSpacing(t *testing.T) {
	r := NewRateLimiter(0)

	start := time.Now()
	for range 10 {
		require.NoError(t, r.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestRateLimiter_Spacing(t *testing.T) {
	r := NewRateLimiter(50 * time.Millisecond)

	start := time.Now()
	require.NoError(t, r.Wait(context.Background()))
	require.NoError(t, r.Wait(context.Background()))
	require.NoError(t, r.Wait(context.Background()))

	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestRateLimiter_Cooldown(t *testing.T) {
	r := NewRateLimiter(0)
	r.RecordRateLimit(60 * time.Millisecond)

	start := time.Now()
	require.NoError(t, r.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestRateLimiter_CooldownOnlyExtends(t *testing.T) {
	r := NewRateLimiter(0)

	r.RecordRateLimit(time.Minute)
	long := r.RetryAt()

	r.RecordRateLimit(time.Second)
	assert.Equal(t, long, r.RetryAt())

	r.RecordRateLimit(0)
	r.RecordRateLimit(-time.Second)
	assert.Equal(t, long, r.RetryAt())
}

func TestRateLimiter_WaitCancelled(t *testing.T) {
	r := NewRateLimiter(0)
	r.RecordRateLimit(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, r.Wait(ctx), context.Canceled)
}

func TestRetryAfter(t *testing.T) {
	now := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name   string
		value  string
		want   time.Duration
		wantOK bool
	}{
		{name: "seconds", value: "120", want: 2 * time.Minute, wantOK: true},
		{name: "padded", value: " 5 ", want: 5 * time.Second, wantOK: true},
		{name: "zero", value: "0", want: 0, wantOK: true},
		{name: "http date", value: now.Add(90 * time.Second).Format(http.TimeFormat), want: 90 * time.Second, wantOK: true},
		{name: "date in the past", value: now.Add(-time.Hour).Format(http.TimeFormat), want: 0, wantOK: true},
		{name: "huge seconds", value: "9223372036854775807", want: maxRetryAfterSeconds * time.Second, wantOK: true},
		{name: "beyond uint64", value: "99999999999999999999999", want: maxRetryAfterSeconds * time.Second, wantOK: true},
		{name: "far future date", value: now.AddDate(50, 0, 0).Format(http.TimeFormat), want: maxRetryAfterSeconds * time.Second, wantOK: true},
		{name: "empty", value: "", wantOK: false},
		{name: "negative", value: "-3", wantOK: false},
		{name: "garbage", value: "soon", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := retryAfter(tt.value, now)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
