package container

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/config"
	"backoffice/internal/session"
	"backoffice/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment: "development",
		AdminName:   "Thierry",
		SessionTTL:  time.Hour,
		API: config.API{
			BaseURL:       "http://localhost:5088",
			ProvidersPath: "/prestataires",
			Timeout:       time.Second,
		},
	}
}

func TestNew(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name        string
		redisURL    string
		expectRedis bool
	}{
		{name: "Container with Redis configured", redisURL: "redis://" + mr.Addr(), expectRedis: true},
		{name: "Container without Redis configured", redisURL: "", expectRedis: false},
		{name: "Container with invalid Redis URL", redisURL: "invalid://redis-url", expectRedis: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.RedisURL = tt.redisURL

			c, err := New(context.Background(), cfg, logger.NewNop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = c.Close() })

			assert.Equal(t, tt.expectRedis, c.HasRedis())
			assert.False(t, c.HasDatabase())
			assert.NotNil(t, c.GetCatalogService())
			assert.NotNil(t, c.GetDashboardService())
			assert.NotEmpty(t, c.SessionSecret)

			if tt.expectRedis {
				assert.IsType(t, &session.RedisStore{}, c.Sessions)
			} else {
				assert.IsType(t, &session.MemoryStore{}, c.Sessions)
			}
		})
	}
}

func TestNew_UsesConfiguredSecret(t *testing.T) {
	cfg := testConfig()
	cfg.SessionSecret = "s3cret"

	c, err := New(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []byte("s3cret"), c.SessionSecret)
	assert.Same(t, cfg, c.GetConfig())
}
