package peano

import "fmt"

// Result is the outcome of a named operation: a natural for arithmetic,
// a boolean for comparisons and predicates.
type Result struct {
	Nat    Nat
	Bool   bool
	IsBool bool
}

// opArity maps every operation name accepted by Apply to its operand
// count. Names match the ops recorded in traces.
var opArity = map[string]int{
	"successor":    1,
	"predecessor":  1,
	"add":          2,
	"subtract":     2,
	"multiply":     2,
	"div":          2,
	"mod":          2,
	"gcd":          2,
	"less_than":    2,
	"equal":        2,
	"greater_than": 2,
}

// opAliases maps short spellings to canonical operation names.
var opAliases = map[string]string{
	"succ": "successor",
	"pred": "predecessor",
	"sub":  "subtract",
	"mul":  "multiply",
	"lt":   "less_than",
	"eq":   "equal",
	"gt":   "greater_than",
}

// CanonicalOp resolves aliases and reports whether op is known.
func CanonicalOp(op string) (string, bool) {
	if alias, ok := opAliases[op]; ok {
		op = alias
	}
	_, ok := opArity[op]
	return op, ok
}

// Arity returns the operand count for a (canonical or aliased) operation.
func Arity(op string) (int, bool) {
	canonical, ok := CanonicalOp(op)
	if !ok {
		return 0, false
	}
	return opArity[canonical], true
}

// OpNames returns the canonical operation names in display order.
func OpNames() []string {
	return []string{
		"successor", "predecessor",
		"add", "subtract", "multiply",
		"div", "mod", "gcd",
		"less_than", "equal", "greater_than",
	}
}

// Apply runs the named operation through the traced engine. Unknown
// operations fail with ErrInvalidInput; div and mod propagate their
// zero-divisor failures.
func (e *Engine) Apply(op string, x, y Nat) (Result, error) {
	canonical, ok := CanonicalOp(op)
	if !ok {
		return Result{}, fmt.Errorf("unsupported operation %q: %w", op, ErrInvalidInput)
	}

	switch canonical {
	case "successor":
		return Result{Nat: e.Successor(x)}, nil
	case "predecessor":
		return Result{Nat: e.Predecessor(x)}, nil
	case "add":
		return Result{Nat: e.Add(x, y)}, nil
	case "subtract":
		return Result{Nat: e.Subtract(x, y)}, nil
	case "multiply":
		return Result{Nat: e.Multiply(x, y)}, nil
	case "div":
		res, err := e.Div(x, y)
		if err != nil {
			return Result{}, err
		}
		return Result{Nat: res}, nil
	case "mod":
		res, err := e.Mod(x, y)
		if err != nil {
			return Result{}, err
		}
		return Result{Nat: res}, nil
	case "gcd":
		return Result{Nat: e.Gcd(x, y)}, nil
	case "less_than":
		return Result{Bool: e.LessThan(x, y), IsBool: true}, nil
	case "equal":
		return Result{Bool: e.Equal(x, y), IsBool: true}, nil
	case "greater_than":
		return Result{Bool: e.GreaterThan(x, y), IsBool: true}, nil
	}

	return Result{}, fmt.Errorf("unsupported operation %q: %w", op, ErrInvalidInput)
}
