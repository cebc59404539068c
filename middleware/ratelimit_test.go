package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketExhaustion(t *testing.T) {
	tb := NewTokenBucket(3, 0.0001)

	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())
	assert.True(t, tb.Allow())

	// Bucket drained, refill rate is effectively zero
	assert.False(t, tb.Allow())
}

func TestTokenBucketRefill(t *testing.T) {
	tb := NewTokenBucket(1, 1000)

	require.True(t, tb.Allow())

	// At 1000 tokens/sec even a tight loop sees a refill
	allowed := false
	for i := 0; i < 1_000_000 && !allowed; i++ {
		allowed = tb.Allow()
	}
	assert.True(t, allowed)
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	rl := NewRateLimiter(1, 60)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))

	// A different client gets its own bucket
	assert.True(t, rl.Allow("10.0.0.2"))
}
