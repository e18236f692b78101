// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/eventbus/core/config"
//
//	type BusConfig struct {
//		Name    string `env:"BUS_NAME" envDefault:"default"`
//		MaxSize int    `env:"BUS_MAX_SIZE" envDefault:"0"`
//	}
//
//	func main() {
//		var cfg BusConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 BusConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 BusConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently, so grouping unrelated settings
// into separate structs keeps their lifecycles independent.
package config
