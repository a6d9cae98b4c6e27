package config

const (
	// defaultMaxOperand keeps derivation traces terminal-sized. Repeated
	// subtraction makes division quadratic in the operands, so the bound
	// is deliberately conservative.
	defaultMaxOperand = 5000

	// defaultMaxDepth matches the depth the derivation view cuts off at.
	defaultMaxDepth = 10
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Limits: LimitsConfig{
			MaxOperand: defaultMaxOperand,
		},
		Display: DisplayConfig{
			MaxDepth:     defaultMaxDepth,
			ShowInternal: false,
			Terms:        true,
		},
		Fraction: FractionConfig{
			AutoReduce: true,
		},
	}
}
