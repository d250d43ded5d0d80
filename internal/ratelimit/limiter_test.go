package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_FirstRequestWaits(t *testing.T) {
	lim := NewDomainLimiter(60 * time.Millisecond)

	start := time.Now()
	require.NoError(t, lim.Wait(context.Background(), "http://registry.test/a"))
	require.NoError(t, lim.Wait(context.Background(), "http://registry.test/b"))
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond, "two requests should be spaced by the delay each")
}

func TestDomainLimiter_HostsAreIndependent(t *testing.T) {
	lim := NewDomainLimiter(time.Hour)
	lim.SetDelay("a.test", 0)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.NoError(t, lim.Wait(ctx, "http://a.test/x"))
	assert.Error(t, lim.Wait(ctx, "http://b.test/x"), "b.test has an hour long delay")
}

func TestDomainLimiter_ZeroDelayNeverBlocks(t *testing.T) {
	lim := NewDomainLimiter(0)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	for i := 0; i < 100; i++ {
		require.NoError(t, lim.Wait(ctx, "http://registry.test/"))
	}
}

func TestDomainLimiter_SetDelay(t *testing.T) {
	lim := NewDomainLimiter(3 * time.Second)
	assert.Equal(t, 3*time.Second, lim.Delay("registry.test"))

	lim.SetDelay("registry.test", 10*time.Second)
	assert.Equal(t, 10*time.Second, lim.Delay("registry.test"))
	assert.Equal(t, 3*time.Second, lim.Delay("other.test"))
}

func TestDomainLimiter_InvalidURLPassesThrough(t *testing.T) {
	lim := NewDomainLimiter(time.Hour)
	assert.NoError(t, lim.Wait(context.Background(), "::not a url"))
}
