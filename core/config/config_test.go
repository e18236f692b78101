package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/eventbus/core/config"
)

// Each test uses its own config type: the loader caches per type, so sharing
// a type across tests would leak values between them.

func TestLoad_Defaults(t *testing.T) {
	type defaultsConfig struct {
		Name    string `env:"CONFIG_TEST_DEFAULTS_NAME" envDefault:"fallback"`
		MaxSize int    `env:"CONFIG_TEST_DEFAULTS_MAX" envDefault:"7"`
	}

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "fallback", cfg.Name)
	assert.Equal(t, 7, cfg.MaxSize)
}

func TestLoad_FromEnvironment(t *testing.T) {
	type envConfig struct {
		Name    string `env:"CONFIG_TEST_ENV_NAME" envDefault:"fallback"`
		MaxSize int    `env:"CONFIG_TEST_ENV_MAX" envDefault:"0"`
	}

	t.Setenv("CONFIG_TEST_ENV_NAME", "orders")
	t.Setenv("CONFIG_TEST_ENV_MAX", "128")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "orders", cfg.Name)
	assert.Equal(t, 128, cfg.MaxSize)
}

func TestLoad_CachesPerType(t *testing.T) {
	type cachedConfig struct {
		Name string `env:"CONFIG_TEST_CACHE_NAME" envDefault:"initial"`
	}

	t.Setenv("CONFIG_TEST_CACHE_NAME", "first")

	var cfg1 cachedConfig
	require.NoError(t, config.Load(&cfg1))
	require.Equal(t, "first", cfg1.Name)

	// A changed environment must not be observed after the first load.
	t.Setenv("CONFIG_TEST_CACHE_NAME", "second")

	var cfg2 cachedConfig
	require.NoError(t, config.Load(&cfg2))
	assert.Equal(t, "first", cfg2.Name)
}

func TestLoad_RequiredMissing(t *testing.T) {
	type requiredConfig struct {
		Token string `env:"CONFIG_TEST_REQUIRED_TOKEN,required"`
	}

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requiredConfig")
}

func TestLoad_NilTarget(t *testing.T) {
	type nilConfig struct{}

	err := config.Load[nilConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilConfig)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	type mustConfig struct {
		Token string `env:"CONFIG_TEST_MUST_TOKEN,required"`
	}

	assert.Panics(t, func() {
		var cfg mustConfig
		config.MustLoad(&cfg)
	})
}
