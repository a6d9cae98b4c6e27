// Package explorecmder provides the explore command, an interactive
// terminal browser for Peano derivations and constructions.
package explorecmder

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/peanoworks/peano/pkg/config"
	"github.com/peanoworks/peano/pkg/peano"
	"github.com/peanoworks/peano/pkg/stepper"
)

type exploreCommander struct {
	args []string

	maxOperand   int
	maxDepth     int
	showInternal bool
	terms        bool
}

const exploreLongDesc string = `Explore a derivation or construction interactively.

Given an operation and operands, runs the traced engine and opens a
terminal browser over the derivation: scroll through the steps, inspect
each one's integer and Peano-term readings, and adjust the display depth
on the fly. Given a bare number or fraction, browses its axiom-level
construction instead.

Keys: j/k scroll, g/G jump, +/- display depth, i internals, t terms,
q quit.

Example:
  peano explore add 2 3
  peano explore gcd 48 18
  peano explore 6/9`

const exploreShortDesc string = "Browse a derivation interactively"

func NewExploreCmd() *cobra.Command {
	cmder := &exploreCommander{}

	flagSet := config.DefaultFlagSet()
	boundFlags := []string{
		config.FlagMaxOperand,
		config.FlagMaxDepth,
		config.FlagShowInternal,
		config.FlagTerms,
	}

	cmd := &cobra.Command{
		Use:   "explore <operation> <x> [y] | explore <n | n/d>",
		Short: exploreShortDesc,
		Long:  exploreLongDesc,
		Args:  cobra.RangeArgs(1, 3),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")

			v, err := config.InitViper(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			config.BindRegisteredFlags(v, cmd, flagSet, boundFlags)

			cmder.maxOperand = v.GetInt("limits.max_operand")
			cmder.maxDepth = v.GetInt("display.max_depth")
			cmder.showInternal = v.GetBool("display.show_internal")
			cmder.terms = v.GetBool("display.terms")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmder.args = args
			return cmder.run(cmd)
		},
	}

	config.AddIntFlag(cmd, flagSet, config.FlagMaxOperand, &cmder.maxOperand)
	config.AddIntFlag(cmd, flagSet, config.FlagMaxDepth, &cmder.maxDepth)
	config.AddBoolFlag(cmd, flagSet, config.FlagShowInternal, &cmder.showInternal)
	config.AddBoolFlag(cmd, flagSet, config.FlagTerms, &cmder.terms)

	return cmd
}

func (c *exploreCommander) run(cmd *cobra.Command) error {
	if len(c.args) == 1 {
		return c.runConstruction(cmd)
	}
	return c.runDerivation(cmd)
}

func (c *exploreCommander) runConstruction(cmd *cobra.Command) error {
	target, err := stepper.ParseTarget(c.args[0])
	if err != nil {
		return err
	}

	operands := []int{target.N}
	if target.Fraction {
		operands = []int{target.Num, target.Den}
	}
	if err := c.checkBounds(operands); err != nil {
		return err
	}

	var t *stepper.Trace
	if target.Fraction {
		t, err = stepper.BuildFraction(target.Num, target.Den, true)
	} else {
		t, err = stepper.BuildNatural(target.N)
	}
	if err != nil {
		return err
	}

	model := newConstructionModel(c.args[0], t, c.terms)
	return runExploreTUI(cmd.Context(), model)
}

func (c *exploreCommander) runDerivation(cmd *cobra.Command) error {
	op, ok := peano.CanonicalOp(c.args[0])
	if !ok {
		return fmt.Errorf("unknown operation %q (see peano explore --help)", c.args[0])
	}

	arity, _ := peano.Arity(op)
	if len(c.args)-1 != arity {
		return fmt.Errorf("%s takes %d operand(s), got %d", op, arity, len(c.args)-1)
	}

	operands := make([]int, 0, arity)
	for _, arg := range c.args[1:] {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%q is not an integer: %w", arg, peano.ErrInvalidInput)
		}
		operands = append(operands, n)
	}
	if err := c.checkBounds(operands); err != nil {
		return err
	}

	x, err := peano.New(operands[0])
	if err != nil {
		return err
	}
	y := peano.Zero
	if arity == 2 {
		y, err = peano.New(operands[1])
		if err != nil {
			return err
		}
	}

	eng := peano.NewEngine()
	eng.StartTrace()

	res, err := eng.Apply(op, x, y)
	if err != nil {
		return err
	}

	model := newDerivationModel(derivationInput{
		op:           op,
		operands:     operands,
		result:       res,
		steps:        peano.Enrich(eng.Trace()),
		totalSteps:   eng.Steps(),
		clamped:      eng.NegativeEncountered(),
		maxDepth:     c.maxDepth,
		showInternal: c.showInternal,
		showTerms:    c.terms,
	})
	return runExploreTUI(cmd.Context(), model)
}

func (c *exploreCommander) checkBounds(operands []int) error {
	for _, n := range operands {
		if n < 0 {
			return fmt.Errorf("%d is negative: %w", n, peano.ErrInvalidInput)
		}
		if n > c.maxOperand {
			return fmt.Errorf("operand %d exceeds the maximum %d (see limits.max_operand)", n, c.maxOperand)
		}
	}
	return nil
}
