package config

import (
	"fmt"
	"strconv"
)

// Config represents the persistent peano configuration stored as
// config.toml in the .peano/ directory. The TOML layout uses sections for
// logical grouping.
type Config struct {
	Version  int            `toml:"version"`
	Limits   LimitsConfig   `toml:"limits"`
	Display  DisplayConfig  `toml:"display"`
	Fraction FractionConfig `toml:"fraction"`
}

// LimitsConfig bounds user input before it reaches the engines. The
// engines themselves accept any valid natural; the bound keeps trace
// sizes sane for terminal display.
type LimitsConfig struct {
	MaxOperand int `toml:"max_operand,omitempty"`
}

// DisplayConfig holds derivation display settings.
type DisplayConfig struct {
	// MaxDepth is the deepest derivation level shown.
	MaxDepth int `toml:"max_depth,omitempty"`

	// ShowInternal includes successor/predecessor bookkeeping steps.
	ShowInternal bool `toml:"show_internal"`

	// Terms renders canonical Peano terms alongside integer readings.
	Terms bool `toml:"terms"`
}

// FractionConfig holds fraction behavior settings.
type FractionConfig struct {
	// AutoReduce reduces constructed fractions to lowest terms unless
	// overridden per invocation.
	AutoReduce bool `toml:"auto_reduce"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter
// on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"limits.max_operand": {
		get: func(c *Config) string { return strconv.Itoa(c.Limits.MaxOperand) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid value for limits.max_operand: %q", v)
			}
			c.Limits.MaxOperand = n
			return nil
		},
	},
	"display.max_depth": {
		get: func(c *Config) string { return strconv.Itoa(c.Display.MaxDepth) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid value for display.max_depth: %q", v)
			}
			c.Display.MaxDepth = n
			return nil
		},
	},
	"display.show_internal": {
		get: func(c *Config) string { return strconv.FormatBool(c.Display.ShowInternal) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for display.show_internal: %w", err)
			}
			c.Display.ShowInternal = b
			return nil
		},
	},
	"display.terms": {
		get: func(c *Config) string { return strconv.FormatBool(c.Display.Terms) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for display.terms: %w", err)
			}
			c.Display.Terms = b
			return nil
		},
	},
	"fraction.auto_reduce": {
		get: func(c *Config) string { return strconv.FormatBool(c.Fraction.AutoReduce) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for fraction.auto_reduce: %w", err)
			}
			c.Fraction.AutoReduce = b
			return nil
		},
	},
}
