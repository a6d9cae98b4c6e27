// Package peanocmder assembles the root peano command.
package peanocmder

import (
	"github.com/spf13/cobra"

	axiomscmder "github.com/peanoworks/peano/cmd/peano/axioms"
	buildcmder "github.com/peanoworks/peano/cmd/peano/build"
	configcmder "github.com/peanoworks/peano/cmd/peano/config"
	evalcmder "github.com/peanoworks/peano/cmd/peano/eval"
	explorecmder "github.com/peanoworks/peano/cmd/peano/explore"
	fraccmder "github.com/peanoworks/peano/cmd/peano/frac"
	mcpcmder "github.com/peanoworks/peano/cmd/peano/mcp"
	versioncmder "github.com/peanoworks/peano/cmd/version"
	"github.com/peanoworks/peano/pkg/utils"
)

const peanoLongDesc string = `Peano constructs natural numbers and fractions from the Peano axioms and
shows every step of the derivation.

Build values from the axioms:
  peano build 3        Construct 3 (zero, then three successors)
  peano build 6/9      Construct 6/9 and reduce it to 2/3

Derive arithmetic from first principles:
  peano eval add 2 3   Derive 2 + 3 with the full definitional trace
  peano frac add 1/2 1/3
  peano explore mul 3 4

Reference and integration:
  peano axioms         The axioms and definitional extensions
  peano mcp            Serve the engines as MCP tools over stdio`

const peanoShortDesc string = "Peano - step-by-step Peano arithmetic"

func NewPeanoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "peano",
		Short:   peanoShortDesc,
		Long:    peanoLongDesc,
		Version: utils.Version,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override the .peano/ config directory")

	// Add subcommands
	cmd.AddCommand(buildcmder.NewBuildCmd())
	cmd.AddCommand(evalcmder.NewEvalCmd())
	cmd.AddCommand(fraccmder.NewFracCmd())
	cmd.AddCommand(explorecmder.NewExploreCmd())
	cmd.AddCommand(axiomscmder.NewAxiomsCmd())
	cmd.AddCommand(mcpcmder.NewMCPCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
