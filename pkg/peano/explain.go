package peano

import (
	"fmt"

	"github.com/peanoworks/peano/pkg/trace"
)

// Step is a derivation node enriched for display: an integer reading of
// the step, a Peano-term reading, and a natural-language explanation.
type Step struct {
	trace.Flat

	// Meaning is the integer reading, e.g. "2 + 3 = 5".
	Meaning string `json:"meaning"`

	// MeaningPeano is the term-level reading, e.g. "add: s(s(0)) + ... → ...".
	MeaningPeano string `json:"meaning_peano"`

	// Explanation is a one-sentence natural-language description.
	Explanation string `json:"explanation"`

	// ArgsInt are the integer values of the args; nil for non-term args.
	ArgsInt []*int `json:"args_int"`

	// ResultInt is the integer value of the result; nil for booleans and
	// error results.
	ResultInt *int `json:"result_int"`
}

// Enrich converts flattened trace nodes into display steps.
func Enrich(nodes []trace.Flat) []Step {
	steps := make([]Step, 0, len(nodes))
	for _, n := range nodes {
		argsInt := make([]*int, len(n.Args))
		for i, a := range n.Args {
			argsInt[i] = intMaybe(a)
		}

		steps = append(steps, Step{
			Flat:         n,
			Meaning:      meaningInt(n),
			MeaningPeano: meaningPeano(n),
			Explanation:  explain(n),
			ArgsInt:      argsInt,
			ResultInt:    intMaybe(n.Result),
		})
	}
	return steps
}

// FilterDisplay drops nodes below maxDepth and, unless showInternal is
// set, the successor/predecessor bookkeeping that clutters the formal
// derivation.
func FilterDisplay(steps []Step, maxDepth int, showInternal bool) []Step {
	out := make([]Step, 0, len(steps))
	for _, s := range steps {
		if s.Depth > maxDepth {
			continue
		}
		if !showInternal && (s.Op == "successor" || s.Op == "predecessor") {
			continue
		}
		out = append(out, s)
	}
	return out
}

// intMaybe returns the integer value of a canonical Peano term, or nil
// for anything else (booleans, "error", malformed).
func intMaybe(s string) *int {
	if !IsTerm(s) {
		return nil
	}
	n, err := ParseTerm(s)
	if err != nil {
		return nil
	}
	v := n.Int()
	return &v
}

// compareSymbols maps comparison ops to their display symbol.
var compareSymbols = map[string]string{
	"less_than":    "<",
	"equal":        "=",
	"greater_than": ">",
}

func meaningInt(n trace.Flat) string {
	args := make([]*int, len(n.Args))
	for i, a := range n.Args {
		args[i] = intMaybe(a)
	}
	res := intMaybe(n.Result)

	switch n.Op {
	case "successor":
		if len(args) == 1 && args[0] != nil && res != nil {
			return fmt.Sprintf("%d + 1 = %d", *args[0], *res)
		}

	case "predecessor":
		if len(args) == 1 && args[0] != nil && res != nil {
			suffix := ""
			if *args[0] == 0 && *res == 0 {
				suffix = " (clamped)"
			}
			return fmt.Sprintf("%d - 1 = %d%s", *args[0], *res, suffix)
		}

	case "add":
		if len(args) == 2 && args[0] != nil && args[1] != nil && res != nil {
			return fmt.Sprintf("%d + %d = %d", *args[0], *args[1], *res)
		}

	case "subtract":
		if len(args) == 2 && args[0] != nil && args[1] != nil && res != nil {
			suffix := ""
			if *args[0] < *args[1] && *res == 0 {
				suffix = " (clamped)"
			}
			return fmt.Sprintf("%d - %d = %d%s", *args[0], *args[1], *res, suffix)
		}

	case "multiply":
		if len(args) == 2 && args[0] != nil && args[1] != nil && res != nil {
			return fmt.Sprintf("%d × %d = %d", *args[0], *args[1], *res)
		}

	case "less_than", "equal", "greater_than":
		if len(args) == 2 && args[0] != nil && args[1] != nil {
			return fmt.Sprintf("%d %s %d = %s", *args[0], compareSymbols[n.Op], *args[1], n.Result)
		}

	case "div":
		if len(args) == 2 && args[0] != nil && args[1] != nil && res != nil {
			return fmt.Sprintf("%d ÷ %d = %d", *args[0], *args[1], *res)
		}

	case "mod":
		if len(args) == 2 && args[0] != nil && args[1] != nil && res != nil {
			return fmt.Sprintf("%d mod %d = %d", *args[0], *args[1], *res)
		}

	case "gcd":
		if len(args) == 2 && args[0] != nil && args[1] != nil && res != nil {
			return fmt.Sprintf("gcd(%d, %d) = %d", *args[0], *args[1], *res)
		}

	case "div_step", "mod_step":
		return "step"

	case "is_zero", "peano":
		return "predicate"
	}

	return ""
}

func meaningPeano(n trace.Flat) string {
	switch n.Op {
	case "successor":
		if len(n.Args) == 1 {
			return fmt.Sprintf("successor: %s → %s", n.Args[0], n.Result)
		}

	case "predecessor":
		if len(n.Args) == 1 {
			return fmt.Sprintf("pred (derived): %s → %s", n.Args[0], n.Result)
		}

	case "add":
		if len(n.Args) == 2 {
			return fmt.Sprintf("add: %s + %s → %s", n.Args[0], n.Args[1], n.Result)
		}

	case "subtract":
		if len(n.Args) == 2 {
			return fmt.Sprintf("sub (derived, clamped): %s − %s → %s", n.Args[0], n.Args[1], n.Result)
		}

	case "multiply":
		if len(n.Args) == 2 {
			return fmt.Sprintf("mult: %s × %s → %s", n.Args[0], n.Args[1], n.Result)
		}

	case "less_than", "equal", "greater_than":
		if len(n.Args) == 2 {
			return fmt.Sprintf("compare: %s %s %s → %s", n.Args[0], compareSymbols[n.Op], n.Args[1], n.Result)
		}

	case "div":
		if len(n.Args) == 2 {
			return fmt.Sprintf("divide: %s ÷ %s → %s", n.Args[0], n.Args[1], n.Result)
		}

	case "mod":
		if len(n.Args) == 2 {
			return fmt.Sprintf("mod: %s mod %s → %s", n.Args[0], n.Args[1], n.Result)
		}

	case "gcd":
		if len(n.Args) == 2 {
			return fmt.Sprintf("gcd: %s, %s → %s", n.Args[0], n.Args[1], n.Result)
		}

	case "div_step", "mod_step":
		return "step"

	case "is_zero", "peano":
		return "predicate"
	}

	return ""
}

func explain(n trace.Flat) string {
	a := n.Args
	r := n.Result

	switch n.Op {
	case "div_step":
		return "Division step: if remainder < divisor stop; otherwise subtract divisor and increment quotient."
	case "mod_step":
		return "Modulo step: if remainder < divisor stop; otherwise subtract divisor and continue."
	case "peano", "is_zero":
		return "Predicate evaluation."
	}

	switch {
	case len(a) == 1:
		switch n.Op {
		case "successor":
			return fmt.Sprintf("Successor of %s is %s.", a[0], r)
		case "predecessor":
			return fmt.Sprintf("Predecessor of %s (clamped at 0) is %s.", a[0], r)
		}

	case len(a) == 2:
		switch n.Op {
		case "add":
			return fmt.Sprintf("Add %s and %s → %s.", a[0], a[1], r)
		case "subtract":
			return fmt.Sprintf("Subtract %s from %s (clamped at 0) → %s.", a[1], a[0], r)
		case "multiply":
			return fmt.Sprintf("Multiply %s by %s (repeated addition) → %s.", a[0], a[1], r)
		case "less_than":
			return fmt.Sprintf("Check %s < %s → %s.", a[0], a[1], r)
		case "equal":
			return fmt.Sprintf("Check %s = %s → %s.", a[0], a[1], r)
		case "greater_than":
			return fmt.Sprintf("Check %s > %s → %s.", a[0], a[1], r)
		case "div":
			return fmt.Sprintf("Divide %s by %s (repeated subtraction) → quotient %s.", a[0], a[1], r)
		case "mod":
			return fmt.Sprintf("Compute %s mod %s (repeated subtraction) → remainder %s.", a[0], a[1], r)
		case "gcd":
			return fmt.Sprintf("gcd(%s, %s) via Euclidean method → %s.", a[0], a[1], r)
		}
	}

	return ""
}
