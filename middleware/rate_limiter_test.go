package middleware

import (
	"testing"

	"glamvan/config"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterUsesConfiguredRate(t *testing.T) {
	old := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 3
	t.Cleanup(func() { config.AppConfig.MaxRequestsPerMin = old })

	l := limiterStore.getLimiter("203.0.113.7")
	assert.Equal(t, 3, l.Burst())
	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(), "request %d within burst", i+1)
	}
	assert.False(t, l.Allow(), "request over the configured rate is refused")
}

func TestRateLimiterDefaultWhenUnconfigured(t *testing.T) {
	old := config.AppConfig.MaxRequestsPerMin
	config.AppConfig.MaxRequestsPerMin = 0
	t.Cleanup(func() { config.AppConfig.MaxRequestsPerMin = old })

	l := limiterStore.getLimiter("203.0.113.8")
	assert.Equal(t, 120, l.Burst())
}
