// Package axiomscmder provides the axioms reference command.
package axiomscmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/peanoworks/peano/pkg/cliui"
)

const axiomsShortDesc string = "Show the Peano axioms and definitional extensions"

const axiomsMarkdown string = `# The Peano Axioms

The engine computes with nothing but these:

- **A1** - 0 is a natural number.
- **A2** - For every natural number n, s(n) is a natural number.
- **A3** - For all naturals m and n, m = n if and only if s(m) = s(n).
- **A4** - For no natural number n is s(n) = 0.

Every natural is a finite tower of successors over zero: 3 is s(s(s(0))).

## Definitional extensions

Arithmetic is defined by primitive recursion over the axioms:

| Definition | Base case | Recursive case |
|---|---|---|
| Addition | x + 0 = x | x + s(y) = s(x + y) |
| Multiplication | x * 0 = 0 | x * s(y) = (x * y) + x |
| Subtraction | x - 0 = x | s(x) - s(y) = x - y |
| Less-than | 0 < s(y) | s(x) < s(y) iff x < y |

Subtraction clamps at zero: the naturals have no negatives, so
2 - 5 = 0 and the derivation flags the clamp.

Division, modulo, and gcd are built on top:

- **div**: repeated subtraction of the divisor, counting the rounds.
- **mod**: repeated subtraction, keeping what remains.
- **gcd**: the Euclidean method, gcd(x, y) = gcd(y, x mod y) until y = 0.

Division and modulo by zero are undefined and rejected.

## Fractions

A fraction is an ordered pair of naturals with a non-zero denominator.
Arithmetic follows the cross-multiplication rules and results reduce to
lowest terms by dividing both components by their gcd.
`

func NewAxiomsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "axioms",
		Short: axiomsShortDesc,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			rendered, err := cliui.RenderMarkdown(axiomsMarkdown)
			if err != nil {
				// Fall back to the raw markdown on render failure.
				fmt.Print(axiomsMarkdown)
				return nil
			}
			fmt.Print(rendered)
			return nil
		},
	}
}
