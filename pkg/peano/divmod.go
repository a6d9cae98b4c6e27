package peano

import (
	"fmt"

	"github.com/peanoworks/peano/pkg/trace"
)

// Defining equations for the repeated-subtraction extensions.
const (
	DefDiv     = "DIV-DEF"  // div(x,y) by repeated subtraction
	DefDivStep = "DIV-STEP" // stop when rem < den, else subtract and count
	DefMod     = "MOD-DEF"  // mod(x,y) by repeated subtraction
	DefModStep = "MOD-STEP" // stop when rem < den, else subtract
	DefGcdBase = "GCD-BASE" // gcd(x,0) = x
	DefGcdRec  = "GCD-REC"  // gcd(x,y) = gcd(y, mod(x,y))
)

// Div derives the quotient of x / y by repeated subtraction. Division by
// zero fails with ErrInvalidInput. The step nodes nest: each continuation
// is a sub-derivation of the previous step, and every step resolves to the
// final quotient. The loop keeps the open nodes on an explicit stack
// rather than recursing, so quotient depth costs no call stack.
func (e *Engine) Div(x, y Nat) (Nat, error) {
	n := e.rec.Enter("div", x.Term(), y.Term())
	n.Definition = DefDiv

	if y == Zero {
		e.rec.Exit(n, "error")
		return 0, fmt.Errorf("division by zero: %w", ErrInvalidInput)
	}

	var open []*trace.Node
	rem, acc := x, Zero
	var res Nat

	for {
		h := e.rec.Enter("div_step", rem.Term(), y.Term(), acc.Term())
		h.Definition = DefDivStep
		open = append(open, h)

		if e.LessThan(rem, y) {
			res = acc
			break
		}

		rem = e.Subtract(rem, y)
		acc = e.Successor(acc)
	}

	for i := len(open) - 1; i >= 0; i-- {
		e.rec.Exit(open[i], res.Term())
	}
	e.rec.Exit(n, res.Term())
	return res, nil
}

// Mod derives the remainder of x / y by repeated subtraction. Modulo by
// zero fails with ErrInvalidInput.
func (e *Engine) Mod(x, y Nat) (Nat, error) {
	n := e.rec.Enter("mod", x.Term(), y.Term())
	n.Definition = DefMod

	if y == Zero {
		e.rec.Exit(n, "error")
		return 0, fmt.Errorf("modulo by zero: %w", ErrInvalidInput)
	}

	var open []*trace.Node
	rem := x
	var res Nat

	for {
		h := e.rec.Enter("mod_step", rem.Term(), y.Term())
		h.Definition = DefModStep
		open = append(open, h)

		if e.LessThan(rem, y) {
			res = rem
			break
		}

		rem = e.Subtract(rem, y)
	}

	for i := len(open) - 1; i >= 0; i-- {
		e.rec.Exit(open[i], res.Term())
	}
	e.rec.Exit(n, res.Term())
	return res, nil
}

// Gcd derives gcd(x, y) by the Euclidean method: gcd(x,0) = x and
// gcd(x,y) = gcd(y, mod(x,y)). Iterative; each round nests as a
// sub-derivation of the previous one and resolves to the final gcd.
func (e *Engine) Gcd(x, y Nat) Nat {
	var open []*trace.Node
	a, b := x, y
	var res Nat

	for {
		n := e.rec.Enter("gcd", a.Term(), b.Term())
		open = append(open, n)

		if b == Zero {
			n.Definition = DefGcdBase
			res = a
			break
		}

		n.Definition = DefGcdRec
		r, _ := e.Mod(a, b) // b != 0, cannot fail
		a, b = b, r
	}

	for i := len(open) - 1; i >= 0; i-- {
		e.rec.Exit(open[i], res.Term())
	}
	return res
}
