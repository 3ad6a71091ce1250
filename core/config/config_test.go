package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcticwolves/clubkit/core/config"
)

// Each test uses its own config type: values are cached per type, so sharing
// a type across tests would leak state.

func TestLoad_Defaults(t *testing.T) {
	type defaultsConfig struct {
		BaseURL string        `env:"TEST_DEFAULTS_BASE_URL" envDefault:"https://api.example.com"`
		Timeout time.Duration `env:"TEST_DEFAULTS_TIMEOUT" envDefault:"30s"`
	}

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	type envConfig struct {
		BaseURL string `env:"TEST_FROMENV_BASE_URL" envDefault:"https://api.example.com"`
	}

	t.Setenv("TEST_FROMENV_BASE_URL", "https://staging.example.com")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "https://staging.example.com", cfg.BaseURL)
}

func TestLoad_Cached(t *testing.T) {
	type cachedConfig struct {
		Value string `env:"TEST_CACHED_VALUE" envDefault:"first"`
	}

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Value)

	// Environment changes after the first load are not observed.
	t.Setenv("TEST_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first, second)
}

func TestLoad_RequiredMissing(t *testing.T) {
	type requiredConfig struct {
		Secret string `env:"TEST_REQUIRED_SECRET,required"`
	}

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEST_REQUIRED_SECRET")
}

func TestLoad_Nil(t *testing.T) {
	var cfg *struct{}
	err := config.Load(cfg)
	assert.ErrorIs(t, err, config.ErrNilConfig)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	type mustConfig struct {
		Secret string `env:"TEST_MUST_SECRET,required"`
	}

	assert.Panics(t, func() {
		var cfg mustConfig
		config.MustLoad(&cfg)
	})
}
