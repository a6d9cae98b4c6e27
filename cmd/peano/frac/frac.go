// Package fraccmder provides the frac command for traced fraction
// arithmetic.
package fraccmder

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/peanoworks/peano/pkg/cliui"
	"github.com/peanoworks/peano/pkg/config"
	"github.com/peanoworks/peano/pkg/logger"
	"github.com/peanoworks/peano/pkg/peano"
)

var resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)

// fracOps maps frac operation names (and aliases) to their operand count.
var fracOps = map[string]int{
	"add":      2,
	"subtract": 2,
	"multiply": 2,
	"divide":   2,
	"simplify": 1,
	"describe": 1,
}

var fracAliases = map[string]string{
	"sub": "subtract",
	"mul": "multiply",
	"div": "divide",
}

type fracCommander struct {
	op string
	a  peano.Fraction
	b  peano.Fraction

	maxOperand int
	asJSON     bool

	debug  bool
	logger *slog.Logger
}

const fracLongDesc string = `Derive fraction arithmetic from the Peano axioms.

Fractions are ordered pairs of naturals with a non-zero denominator.
Arithmetic follows the cross-multiplication definitions and every result
is reduced to lowest terms by the traced Euclidean gcd. Subtraction
clamps at zero, so 1/3 - 1/2 yields 0/1.

Operations: add, subtract (sub), multiply (mul), divide (div),
simplify, describe.

describe reports everything the engine can derive about n/d: the gcd,
the reduced form, and the quotient/remainder decomposition with the
n = d*q + r check.

Example:
  peano frac add 1/2 1/3
  peano frac simplify 6/9
  peano frac divide 1/2 3/4
  peano frac describe 17/5`

const fracShortDesc string = "Derive fraction arithmetic step by step"

func NewFracCmd() *cobra.Command {
	cmder := &fracCommander{}

	flagSet := config.DefaultFlagSet()
	boundFlags := []string{config.FlagMaxOperand}

	cmd := &cobra.Command{
		Use:   "frac <operation> <a/b> [c/d]",
		Short: fracShortDesc,
		Long:  fracLongDesc,
		Args:  cobra.RangeArgs(2, 3),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")

			v, err := config.InitViper(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			config.BindRegisteredFlags(v, cmd, flagSet, boundFlags)

			cmder.maxOperand = v.GetInt("limits.max_operand")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cmder.parseArgs(args); err != nil {
				return err
			}

			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}

			return cmder.run()
		},
	}

	config.AddIntFlag(cmd, flagSet, config.FlagMaxOperand, &cmder.maxOperand)
	cmd.Flags().BoolVar(&cmder.asJSON, "json", false, "Output the result as JSON")

	return cmd
}

func (c *fracCommander) parseArgs(args []string) error {
	op := args[0]
	if alias, ok := fracAliases[op]; ok {
		op = alias
	}
	arity, ok := fracOps[op]
	if !ok {
		return fmt.Errorf("unknown fraction operation %q (see peano frac --help)", args[0])
	}
	c.op = op

	if len(args)-1 != arity {
		return fmt.Errorf("%s takes %d fraction(s), got %d", op, arity, len(args)-1)
	}

	var err error
	c.a, err = c.parseFraction(args[1])
	if err != nil {
		return err
	}
	if arity == 2 {
		c.b, err = c.parseFraction(args[2])
		if err != nil {
			return err
		}
	}

	return nil
}

// parseFraction parses "n/d" into a Fraction. A bare natural n is read
// as n/1.
func (c *fracCommander) parseFraction(s string) (peano.Fraction, error) {
	numPart, denPart, ok := strings.Cut(s, "/")
	if !ok {
		denPart = "1"
	}

	num, err := parseNat(numPart)
	if err != nil {
		return peano.Fraction{}, err
	}
	den, err := parseNat(denPart)
	if err != nil {
		return peano.Fraction{}, err
	}

	return peano.NewFraction(num, den)
}

func parseNat(s string) (peano.Nat, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return peano.Zero, fmt.Errorf("%q is not an integer: %w", s, peano.ErrInvalidInput)
	}
	return peano.New(n)
}

func (c *fracCommander) run() error {
	c.logger = logger.New(logger.WithDebug(c.debug), logger.WithPretty(true))

	for _, n := range []peano.Nat{c.a.Num, c.a.Den, c.b.Num, c.b.Den} {
		if n.Int() > c.maxOperand {
			return fmt.Errorf("operand %d exceeds the maximum %d (see limits.max_operand)", n.Int(), c.maxOperand)
		}
	}

	c.logger.Debug("fraction operation", "operation", c.op, "a", c.a.String(), "b", c.b.String())

	eng := peano.NewEngine()
	eng.StartTrace()

	if c.op == "describe" {
		return c.runDescribe(eng)
	}

	var (
		res peano.Fraction
		err error
	)
	switch c.op {
	case "add":
		res = eng.AddFractions(c.a, c.b)
	case "subtract":
		res = eng.SubtractFractions(c.a, c.b)
	case "multiply":
		res = eng.MultiplyFractions(c.a, c.b)
	case "divide":
		res, err = eng.DivideFractions(c.a, c.b)
	case "simplify":
		res = eng.Simplify(c.a)
	}
	if err != nil {
		return err
	}

	if c.asJSON {
		return printJSON(struct {
			Operation string              `json:"operation"`
			A         peano.FractionValue `json:"a"`
			B         *peano.FractionValue `json:"b,omitempty"`
			Result    peano.FractionValue `json:"result"`
			Steps     int                 `json:"steps"`
		}{
			Operation: c.op,
			A:         peano.DisplayFraction(c.a),
			B:         c.second(),
			Result:    peano.DisplayFraction(res),
			Steps:     eng.Steps(),
		})
	}

	fmt.Printf("%s %s %s\n",
		cliui.SuccessMark,
		cliui.HeaderStyle.Render(c.headline()),
		resultStyle.Render(res.String()),
	)
	fmt.Printf("  %s %s\n", cliui.DimStyle.Render("peano"), res.Num.Term()+" / "+res.Den.Term())
	fmt.Printf("  %s %d steps\n", cliui.DimStyle.Render("derivation"), eng.Steps())
	if eng.NegativeEncountered() {
		fmt.Printf("  %s\n", cliui.WarnStyle.Render("a subtraction clamped at zero"))
	}
	return nil
}

func (c *fracCommander) second() *peano.FractionValue {
	if fracOps[c.op] != 2 {
		return nil
	}
	v := peano.DisplayFraction(c.b)
	return &v
}

func (c *fracCommander) headline() string {
	if fracOps[c.op] == 2 {
		return fmt.Sprintf("%s %s %s =", c.a.String(), c.op, c.b.String())
	}
	return fmt.Sprintf("%s %s =", c.op, c.a.String())
}

func (c *fracCommander) runDescribe(eng *peano.Engine) error {
	info, err := eng.DescribeFraction(c.a.Num, c.a.Den)
	if err != nil {
		return err
	}

	if c.asJSON {
		return printJSON(struct {
			*peano.FractionInfo
			Steps int `json:"steps"`
		}{info, eng.Steps()})
	}

	n, d := info.Numerator.Int, info.Denominator.Int
	fmt.Printf("%s\n", cliui.HeaderStyle.Render(fmt.Sprintf("%d/%d", n, d)))
	fmt.Printf("  %s %d\n", cliui.KeyStyle.Render("gcd"), info.GCD.Int)
	fmt.Printf("  %s %d/%d\n",
		cliui.KeyStyle.Render("lowest terms"),
		info.Simplified.Numerator.Int,
		info.Simplified.Denominator.Int,
	)
	fmt.Printf("  %s %d = %d*%d + %d\n",
		cliui.KeyStyle.Render("division"),
		info.Division.Check.LHS.Int,
		d,
		info.Division.Quotient.Int,
		info.Division.Remainder.Int,
	)
	fmt.Printf("  %s %d steps\n", cliui.DimStyle.Render("derivation"), eng.Steps())
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
