package bus

import "fmt"

// Config holds the immutable construction parameters shared by all bus
// implementations. Designed for environment-based configuration using popular
// env parsing libraries.
type Config struct {
	// Name identifies the bus in errors and logs.
	Name string `env:"BUS_NAME" envDefault:"default"`

	// MaxSize bounds the number of buffered events. Zero disables the bound.
	MaxSize int `env:"BUS_MAX_SIZE" envDefault:"0"`

	// EnableDeduplication rejects enqueues whose event ID is already buffered.
	// Only queue buses honor it; topics model broadcast distribution where
	// repeated identifiers are a normal occurrence.
	EnableDeduplication bool `env:"BUS_ENABLE_DEDUPLICATION" envDefault:"false"`
}

// DefaultConfig returns an unbounded, non-deduplicating configuration.
func DefaultConfig() Config {
	return Config{
		Name: DefaultBusName,
	}
}

// Validate normalizes and checks the configuration. An empty name falls back
// to DefaultBusName; a negative max size is rejected.
func (c *Config) Validate() error {
	if c.Name == "" {
		c.Name = DefaultBusName
	}
	if c.MaxSize < 0 {
		return fmt.Errorf("%w: max size must not be negative, got %d", ErrInvalidConfig, c.MaxSize)
	}
	return nil
}
