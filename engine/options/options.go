package options

import (
	"errors"
	"log/slog"
	"os"
)

// PowMode selects how the ^ operator computes its result.
type PowMode int

const (
	// PowFloat raises through float64 and narrows the result to int32,
	// saturating at the int32 bounds. This matches the historical output of
	// the calculator, including its loss of precision for large magnitudes.
	PowFloat PowMode = iota
	// PowExact uses exact integer exponentiation with 32-bit wraparound.
	PowExact
)

func (m PowMode) String() string {
	switch m {
	case PowFloat:
		return "float"
	case PowExact:
		return "exact"
	default:
		return "unknown"
	}
}

// Config holds all configuration for creating an evaluator
type Config struct {
	// Logger for the evaluator
	handler slog.Handler
	// Exponentiation strategy for ^
	powMode PowMode
}

// Option is a function that modifies Config
type Option func(*Config) error

// DefaultConfig initializes a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		handler: DefaultHandler(),
		powMode: PowFloat,
	}
}

// DefaultHandler returns the default logging handler
func DefaultHandler() slog.Handler {
	return slog.NewTextHandler(os.Stdout, nil)
}

// New builds a Config from the defaults and the given options, then validates it.
func New(opts ...Option) (*Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errors.Join(ErrInvalidOption, err)
		}
	}
	if err := WithDefaults()(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithLogHandler sets the log handler for the evaluator
func WithLogHandler(handler slog.Handler) Option {
	return func(c *Config) error {
		if handler != nil {
			c.handler = handler
		}
		return nil
	}
}

// WithSlog sets the slog logger for the evaluator
func WithSlog(logger *slog.Logger) Option {
	return func(c *Config) error {
		if logger != nil {
			c.handler = logger.Handler()
		}
		return nil
	}
}

// WithPowMode selects the exponentiation strategy.
func WithPowMode(mode PowMode) Option {
	return func(c *Config) error {
		switch mode {
		case PowFloat, PowExact:
			c.powMode = mode
			return nil
		default:
			return ErrUnknownPowMode
		}
	}
}

// WithExactPow is shorthand for WithPowMode(PowExact).
func WithExactPow() Option {
	return WithPowMode(PowExact)
}

// WithDefaults applies default values to any config properties that are unset
func WithDefaults() Option {
	return func(c *Config) error {
		if c.handler == nil {
			c.handler = DefaultHandler()
		}
		return nil
	}
}

// Validate performs basic validation on the configuration.
func (c *Config) Validate() error {
	var errz []error
	if c.handler == nil {
		errz = append(errz, ErrNoLogHandler)
	}
	if c.powMode != PowFloat && c.powMode != PowExact {
		errz = append(errz, ErrUnknownPowMode)
	}
	return errors.Join(errz...)
}

// GetHandler returns the configured log handler
func (c *Config) GetHandler() slog.Handler {
	return c.handler
}

// SetHandler sets the log handler
func (c *Config) SetHandler(handler slog.Handler) {
	c.handler = handler
}

// GetPowMode returns the configured exponentiation strategy
func (c *Config) GetPowMode() PowMode {
	return c.powMode
}
