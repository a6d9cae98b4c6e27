// Package buildcmder provides the build command for constructing naturals
// and fractions from the axioms.
package buildcmder

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/peanoworks/peano/pkg/cliui"
	"github.com/peanoworks/peano/pkg/config"
	"github.com/peanoworks/peano/pkg/logger"
	"github.com/peanoworks/peano/pkg/stepper"
	"github.com/peanoworks/peano/pkg/utils"
)

var (
	indexStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
)

type buildCommander struct {
	target stepper.Target

	reduce     bool
	maxOperand int
	asJSON     bool

	debug  bool
	logger *slog.Logger
}

const buildLongDesc string = `Construct a natural number or fraction from the Peano axioms.

A natural n is built in n+1 steps: introduce zero (axiom A1), then apply
the successor function n times (axiom A2). A fraction builds both
components the same way, pairs them, and reduces by their greatest common
divisor unless reduction is disabled or the fraction is already in lowest
terms.

Example:
  peano build 3
  peano build 6/9
  peano build 6/9 --reduce=false
  peano build 120 --json`

const buildShortDesc string = "Construct a natural or fraction step by step"

func NewBuildCmd() *cobra.Command {
	cmder := &buildCommander{}

	flagSet := config.DefaultFlagSet()
	boundFlags := []string{config.FlagReduce, config.FlagMaxOperand}

	cmd := &cobra.Command{
		Use:   "build <n | n/d>",
		Short: buildShortDesc,
		Long:  buildLongDesc,
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")

			v, err := config.InitViper(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			config.BindRegisteredFlags(v, cmd, flagSet, boundFlags)

			cmder.reduce = v.GetBool("fraction.auto_reduce")
			cmder.maxOperand = v.GetInt("limits.max_operand")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cmder.target, err = stepper.ParseTarget(args[0])
			if err != nil {
				return err
			}

			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}

			return cmder.run()
		},
	}

	config.AddBoolFlag(cmd, flagSet, config.FlagReduce, &cmder.reduce)
	config.AddIntFlag(cmd, flagSet, config.FlagMaxOperand, &cmder.maxOperand)
	cmd.Flags().BoolVar(&cmder.asJSON, "json", false, "Output the trace as JSON")

	return cmd
}

func (c *buildCommander) run() error {
	c.logger = logger.New(logger.WithDebug(c.debug), logger.WithPretty(true))

	if err := c.checkBounds(); err != nil {
		return err
	}

	var (
		t   *stepper.Trace
		err error
	)
	if c.target.Fraction {
		c.logger.Debug("building fraction",
			"numerator", c.target.Num,
			"denominator", c.target.Den,
			"reduce", c.reduce,
		)
		t, err = stepper.BuildFraction(c.target.Num, c.target.Den, c.reduce)
	} else {
		c.logger.Debug("building natural", "n", c.target.N)
		t, err = stepper.BuildNatural(c.target.N)
	}
	if err != nil {
		return err
	}

	if c.asJSON {
		data, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding trace: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	c.printTrace(t)
	return nil
}

func (c *buildCommander) checkBounds() error {
	operands := []int{c.target.N}
	if c.target.Fraction {
		operands = []int{c.target.Num, c.target.Den}
	}
	for _, n := range operands {
		if n > c.maxOperand {
			return fmt.Errorf("operand %d exceeds the maximum %d (see limits.max_operand)", n, c.maxOperand)
		}
	}
	return nil
}

func (c *buildCommander) printTrace(t *stepper.Trace) {
	for _, step := range t.Steps {
		fmt.Printf("%s %s %s\n",
			indexStyle.Render(fmt.Sprintf("%3d.", step.Index+1)),
			fmt.Sprintf("%-52s", step.Description),
			ruleStyle.Render(string(step.Rule)),
		)
		if step.Term != "" {
			fmt.Printf("     %s\n", cliui.DimStyle.Render(utils.Truncate(step.Term, 72)))
		}
	}

	fmt.Println()
	switch t.Final.Kind {
	case stepper.KindFraction:
		fmt.Printf("%s %s %s\n",
			cliui.SuccessMark,
			cliui.HeaderStyle.Render("Constructed:"),
			valueStyle.Render(fmt.Sprintf("%d/%d", t.Final.Numerator, t.Final.Denominator)),
		)
	default:
		fmt.Printf("%s %s %s\n",
			cliui.SuccessMark,
			cliui.HeaderStyle.Render("Constructed:"),
			valueStyle.Render(fmt.Sprintf("%d", t.Final.Value)),
		)
	}
	fmt.Printf("  %s\n", cliui.DimStyle.Render(utils.Truncate(t.Final.Term, 76)))
	fmt.Printf("  %s %d steps\n", cliui.DimStyle.Render("trace"), len(t.Steps))
}
