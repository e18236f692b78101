package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilConfig is returned when Load receives a nil target.
var ErrNilConfig = errors.New("config target must not be nil")

var (
	cache      sync.Map // reflect.Type -> parsed config value
	dotenvOnce sync.Once
)

// Load parses environment variables into cfg. Each configuration type is
// parsed once per process; later calls for the same type return the cached
// value, so two loads of the same type always observe identical values.
//
// A .env file in the working directory is loaded into the environment before
// the first parse. A missing .env file is not an error.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		// Real environments set variables directly; .env is a local convenience.
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	parsed, err := env.ParseAs[T]()
	if err != nil {
		return fmt.Errorf("failed to parse %s from environment: %w", key, err)
	}

	cache.Store(key, parsed)
	*cfg = parsed
	return nil
}

// MustLoad is Load for startup paths where a bad environment is fatal.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
