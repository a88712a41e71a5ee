package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/extract", Method: "POST", Limit: 10, Window: time.Hour, Burst: 3},
		},
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("client-1", "/sessions/abc/extract", "POST")
		require.True(t, allowed, "request %d within burst", i)
	}

	allowed, info := limiter.Allow("client-1", "/sessions/abc/extract", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 10, info.Limit)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/extract", Method: "POST", Limit: 10, Window: time.Hour, Burst: 1},
		},
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("client-1", "/sessions/abc/extract", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("client-1", "/sessions/abc/extract", "POST")
	require.False(t, allowed)

	allowed, _ = limiter.Allow("client-2", "/sessions/abc/extract", "POST")
	assert.True(t, allowed, "a saturated client must not affect others")
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("client-1", "/anything", "POST")
		require.True(t, allowed)
	}
}

func TestMatchEndpoint_HealthIsUnlimited(t *testing.T) {
	config := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, config)
	assert.Zero(t, config.Limit)
}

func TestMatchEndpoint_SuffixMatchesSessionRoutes(t *testing.T) {
	configs := DefaultEndpointConfigs()

	config := MatchEndpoint("/sessions/abc-123/generate-summary", "POST", configs)
	require.NotNil(t, config)
	assert.Equal(t, 10, config.Limit)

	config = MatchEndpoint("/sessions/abc-123/sections/contact", "PUT", configs)
	require.NotNil(t, config)
	assert.Equal(t, 120, config.Limit)
}

func TestMatchEndpoint_NoMatchFallsThrough(t *testing.T) {
	assert.Nil(t, MatchEndpoint("/sessions/abc-123", "GET", DefaultEndpointConfigs()))
}
