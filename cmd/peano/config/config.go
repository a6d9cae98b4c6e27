// Package configcmder provides the config command for managing persistent
// peano configuration stored in the .peano/ directory.
package configcmder

import (
	"github.com/spf13/cobra"
)

const configLongDesc string = `Manage persistent peano configuration.

Configuration is stored as config.toml in the .peano/ directory and
provides default values for command flags. CLI flags always take
precedence over config file values, and PEANO_* environment variables
sit between the two.

Keys use dotted notation matching the TOML section structure:
  limits.max_operand,
  display.max_depth, display.show_internal, display.terms,
  fraction.auto_reduce

Use subcommands to get, set, or list configuration values:
  peano config set <key> <value>    Set a configuration value
  peano config get <key>            Get a configuration value
  peano config list                 List all configuration values

Examples:
  peano config set display.max_depth 20
  peano config set fraction.auto_reduce false
  peano config get limits.max_operand
  peano config list`

const configShortDesc string = "Manage persistent peano configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
