// Package evalcmder provides the eval command for traced Peano arithmetic.
package evalcmder

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

var (
	meaningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	badgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	resultStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
)

type evalCommander struct {
	op string
	x  int
	y  int

	maxOperand   int
	maxDepth     int
	showInternal bool
	terms        bool
	asJSON       bool

	debug  bool
	logger *slog.Logger
}

const evalLongDesc string = `Derive a Peano arithmetic operation from first principles.

The engine computes with nothing but zero, successor, and predecessor,
recording every definitional step. Addition recurses on its second
argument, multiplication is repeated addition, subtraction clamps at
zero, and division, modulo, and gcd are built from repeated subtraction.

Operations: successor (succ), predecessor (pred), add, subtract (sub),
multiply (mul), div, mod, gcd, less_than (lt), equal (eq),
greater_than (gt).

Deep derivations are pruned for display; raise --max-depth to see more,
and --show-internal to include successor/predecessor bookkeeping.

Example:
  peano eval add 2 3
  peano eval mul 3 4 --terms
  peano eval gcd 48 18 -m 20
  peano eval lt 2 5 --json`

const evalShortDesc string = "Derive an operation with its full trace"

func NewEvalCmd() *cobra.Command {
	cmder := &evalCommander{}

	flagSet := config.DefaultFlagSet()
	boundFlags := []string{
		config.FlagMaxOperand,
		config.FlagMaxDepth,
		config.FlagShowInternal,
		config.FlagTerms,
	}

	cmd := &cobra.Command{
		Use:   "eval <operation> <x> [y]",
		Short: evalShortDesc,
		Long:  evalLongDesc,
		Args:  cobra.RangeArgs(2, 3),
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
	config.AddIntFlag(cmd, flagSet, config.FlagMaxDepth, &cmder.maxDepth)
	config.AddBoolFlag(cmd, flagSet, config.FlagShowInternal, &cmder.showInternal)
	config.AddBoolFlag(cmd, flagSet, config.FlagTerms, &cmder.terms)
	cmd.Flags().BoolVar(&cmder.asJSON, "json", false, "Output the derivation as JSON")

	return cmd
}

func (c *evalCommander) parseArgs(args []string) error {
	op, ok := peano.CanonicalOp(args[0])
	if !ok {
		return fmt.Errorf("unknown operation %q (see peano eval --help)", args[0])
	}
	c.op = op

	arity, _ := peano.Arity(op)
	if len(args)-1 != arity {
		return fmt.Errorf("%s takes %d operand(s), got %d", op, arity, len(args)-1)
	}

	var err error
	c.x, err = parseOperand(args[1])
	if err != nil {
		return err
	}
	if arity == 2 {
		c.y, err = parseOperand(args[2])
		if err != nil {
			return err
		}
	}

	return nil
}

func parseOperand(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer: %w", s, peano.ErrInvalidInput)
	}
	if n < 0 {
		return 0, fmt.Errorf("%d is negative: %w", n, peano.ErrInvalidInput)
	}
	return n, nil
}

// evalOutput is the JSON shape of a derivation.
type evalOutput struct {
	Operation       string       `json:"operation"`
	X               int          `json:"x"`
	Y               *int         `json:"y,omitempty"`
	Result          *int         `json:"result,omitempty"`
	ResultBool      *bool        `json:"result_bool,omitempty"`
	Steps           int          `json:"steps"`
	NegativeClamped bool         `json:"negative_clamped"`
	Trace           []peano.Step `json:"trace"`
}

func (c *evalCommander) run() error {
	c.logger = logger.New(logger.WithDebug(c.debug), logger.WithPretty(true))

	if c.x > c.maxOperand || c.y > c.maxOperand {
		return fmt.Errorf("operands exceed the maximum %d (see limits.max_operand)", c.maxOperand)
	}

	x, err := peano.New(c.x)
	if err != nil {
		return err
	}
	y, err := peano.New(c.y)
	if err != nil {
		return err
	}

	c.logger.Debug("evaluating", "operation", c.op, "x", c.x, "y", c.y)

	eng := peano.NewEngine()
	eng.StartTrace()

	res, err := eng.Apply(c.op, x, y)
	if err != nil {
		return err
	}

	steps := peano.FilterDisplay(peano.Enrich(eng.Trace()), c.maxDepth, c.showInternal)

	if c.asJSON {
		return c.printJSON(res, eng, steps)
	}

	c.printDerivation(res, eng, steps)
	return nil
}

func (c *evalCommander) printJSON(res peano.Result, eng *peano.Engine, steps []peano.Step) error {
	out := evalOutput{
		Operation:       c.op,
		X:               c.x,
		Steps:           eng.Steps(),
		NegativeClamped: eng.NegativeEncountered(),
		Trace:           steps,
	}

	if arity, _ := peano.Arity(c.op); arity == 2 {
		out.Y = &c.y
	}

	if res.IsBool {
		out.ResultBool = &res.Bool
	} else {
		n := res.Nat.Int()
		out.Result = &n
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding derivation: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func (c *evalCommander) printDerivation(res peano.Result, eng *peano.Engine, steps []peano.Step) {
	for _, s := range steps {
		indent := strings.Repeat("  ", s.Depth)

		badge := s.Definition
		if s.Axiom != "" {
			badge = s.Axiom
		}

		fmt.Printf("%s%s  %s\n",
			indent,
			meaningStyle.Render(s.Meaning),
			badgeStyle.Render(badge),
		)
		if c.terms && s.MeaningPeano != "" {
			fmt.Printf("%s%s\n", indent, cliui.DimStyle.Render(s.MeaningPeano))
		}
	}

	var rendered string
	if res.IsBool {
		rendered = strconv.FormatBool(res.Bool)
	} else {
		rendered = strconv.Itoa(res.Nat.Int())
	}

	fmt.Println()
	fmt.Printf("%s %s %s\n",
		cliui.SuccessMark,
		cliui.HeaderStyle.Render("Result:"),
		resultStyle.Render(rendered),
	)
	fmt.Printf("  %s %d steps\n", cliui.DimStyle.Render("derivation"), eng.Steps())
	if eng.NegativeEncountered() {
		fmt.Printf("  %s\n", cliui.WarnStyle.Render("a subtraction clamped at zero"))
	}
}
