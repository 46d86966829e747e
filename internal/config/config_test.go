package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	// t.Setenv restaura el valor original al terminar el test
	for _, key := range []string{"PORT", "APP_ENV", "STORE_DRIVER", "STORE_PATH", "PAGE_SIZE", "CACHE_TTL", "LOG_FILE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "bolt", cfg.StoreDriver)
	assert.Equal(t, "catalog.db", cfg.StorePath)
	assert.Equal(t, 12, cfg.PageSize)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("PAGE_SIZE", "5")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("APP_ENV", "production")

	cfg := LoadConfig()

	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfigInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("PAGE_SIZE", "zero")
	t.Setenv("CACHE_TTL", "soon")

	cfg := LoadConfig()

	assert.Equal(t, 12, cfg.PageSize)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
}
