package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalExhaustsAndRefills(t *testing.T) {
	l := NewLocal(Config{Capacity: 2, RefillTokens: 1, RefillInterval: time.Second})
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return at }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		d, err := l.Allow(ctx, "ip:1")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	}

	d, err := l.Allow(ctx, "ip:1")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, int64(0), d.Remaining)
	assert.Greater(t, d.RetryAfter, time.Duration(0))

	d, err = l.Allow(ctx, "ip:2")
	require.NoError(t, err)
	assert.True(t, d.Allowed, "keys are independent")

	at = at.Add(time.Second)
	d, err = l.Allow(ctx, "ip:1")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestLocalEvictsIdleKeys(t *testing.T) {
	l := NewLocal(Config{Capacity: 1, RefillInterval: time.Second, TTL: 10 * time.Second})
	at := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return at }

	_, _ = l.Allow(context.Background(), "a")
	at = at.Add(time.Minute)
	_, _ = l.Allow(context.Background(), "b")

	assert.NotContains(t, l.entries, "a")
	assert.Contains(t, l.entries, "b")
}

func TestConfigNormalize(t *testing.T) {
	c := Config{}
	c.Normalize()
	assert.Equal(t, 1, c.Capacity)
	assert.Equal(t, time.Second, c.RefillInterval)
	assert.Equal(t, 5*time.Second, c.TTL)
	assert.Equal(t, "rl", c.Prefix)
}

func TestLoginKeyNormalizesIdentifier(t *testing.T) {
	assert.Equal(t, loginKey("1.2.3.4", "Admin@Example.com "), loginKey("1.2.3.4", "admin@example.com"))
}
