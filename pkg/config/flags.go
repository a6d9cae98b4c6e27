package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag is the single source of truth for a CLI flag.
// Commands reference flags by registry key rather than hard-coding names,
// shorthands, defaults, and descriptions inline. This prevents flag drift
// when the same logical flag appears on multiple commands (e.g.,
// --max-depth on both "peano eval" and "peano explore").
type Flag struct {
	// Name is the long flag name (e.g. "max-depth").
	Name string

	// Shorthand is the one-letter short flag. Empty for no shorthand.
	Shorthand string

	// ViperKey is the dotted config key this flag maps to.
	ViperKey string

	// Description is the help text shown in --help output.
	Description string
}

// FlagSet is a mapping of registry keys to Flag definitions.
type FlagSet map[string]Flag

// Flag registry keys.
const (
	FlagMaxOperand   = "max-operand"
	FlagMaxDepth     = "max-depth"
	FlagShowInternal = "show-internal"
	FlagTerms        = "terms"
	FlagReduce       = "reduce"
)

// DefaultFlagSet returns the shared flag registry for derivation commands.
func DefaultFlagSet() FlagSet {
	return FlagSet{
		FlagMaxOperand: {
			Name:        "max-operand",
			ViperKey:    "limits.max_operand",
			Description: "Largest operand accepted (keeps trace sizes sane)",
		},
		FlagMaxDepth: {
			Name:        "max-depth",
			Shorthand:   "m",
			ViperKey:    "display.max_depth",
			Description: "Deepest derivation level to display",
		},
		FlagShowInternal: {
			Name:        "show-internal",
			ViperKey:    "display.show_internal",
			Description: "Show successor/predecessor bookkeeping steps",
		},
		FlagTerms: {
			Name:        "terms",
			ViperKey:    "display.terms",
			Description: "Render canonical Peano terms alongside integers",
		},
		FlagReduce: {
			Name:        "reduce",
			ViperKey:    "fraction.auto_reduce",
			Description: "Reduce fractions to lowest terms",
		},
	}
}

// AddIntFlag registers an int flag on cmd from the given FlagSet. The
// flag's name, shorthand, default, and description all come from the
// FlagSet entry so they cannot drift across commands.
func AddIntFlag(cmd *cobra.Command, fs FlagSet, key string, target *int) {
	def, ok := fs[key]
	if !ok {
		return
	}

	defaultVal := defaultInt(def.ViperKey)
	if def.Shorthand != "" {
		cmd.Flags().IntVarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
	} else {
		cmd.Flags().IntVar(target, def.Name, defaultVal, def.Description)
	}
}

// AddBoolFlag registers a bool flag on cmd from the given FlagSet.
func AddBoolFlag(cmd *cobra.Command, fs FlagSet, key string, target *bool) {
	def, ok := fs[key]
	if !ok {
		return
	}

	defaultVal := defaultBool(def.ViperKey)
	if def.Shorthand != "" {
		cmd.Flags().BoolVarP(target, def.Name, def.Shorthand, defaultVal, def.Description)
	} else {
		cmd.Flags().BoolVar(target, def.Name, defaultVal, def.Description)
	}
}

// BindRegisteredFlags binds already-registered flags to viper using
// definitions from the given FlagSet. Call this in PreRunE after InitViper
// to connect flags to the viper precedence chain
// (flag > env > config file > default).
func BindRegisteredFlags(v *viper.Viper, cmd *cobra.Command, fs FlagSet, registryKeys []string) {
	for _, registryKey := range registryKeys {
		def, ok := fs[registryKey]
		if !ok {
			continue
		}

		f := cmd.Flags().Lookup(def.Name)
		if f == nil {
			continue
		}

		_ = v.BindPFlag(def.ViperKey, f)
	}
}

// defaultInt returns the default int value for a viper key from
// NewDefaultConfig.
func defaultInt(viperKey string) int {
	v := viper.New()
	setViperDefaults(v)
	return v.GetInt(viperKey)
}

// defaultBool returns the default bool value for a viper key from
// NewDefaultConfig.
func defaultBool(viperKey string) bool {
	v := viper.New()
	setViperDefaults(v)
	return v.GetBool(viperKey)
}
