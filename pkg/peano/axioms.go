package peano

import "strconv"

// Axiom tags recorded on trace nodes.
const (
	AxiomA1 = "A1" // 0 is a natural number
	AxiomA2 = "A2" // if x is natural, s(x) is natural
	AxiomA3 = "A3" // s(x) != 0 for all x
	AxiomA4 = "A4" // s(x) = s(y) implies x = y
)

// IsZero tests x against the base case of axiom A1.
func (e *Engine) IsZero(x Nat) bool {
	n := e.rec.Enter("is_zero", x.Term())
	if x == Zero {
		n.Axiom = AxiomA1
		e.rec.Exit(n, strconv.FormatBool(true))
		return true
	}
	e.rec.Exit(n, strconv.FormatBool(false))
	return false
}

// Successor applies axiom A2: the successor of a natural is a natural.
func (e *Engine) Successor(x Nat) Nat {
	n := e.rec.Enter("successor", x.Term())
	res := x + 1
	e.rec.Exit(n, res.Term())
	return res
}

// Predecessor is the derived inverse of Successor, clamped at zero.
func (e *Engine) Predecessor(x Nat) Nat {
	n := e.rec.Enter("predecessor", x.Term())
	res := x
	if x > Zero {
		res = x - 1
	}
	e.rec.Exit(n, res.Term())
	return res
}

// IsNat derives that x is a natural number by descending to zero through
// A2 and concluding with A1.
func (e *Engine) IsNat(x Nat) bool {
	n := e.rec.Enter("peano", x.Term())
	if x == Zero {
		n.Axiom = AxiomA1
		e.rec.Exit(n, strconv.FormatBool(true))
		return true
	}
	n.Axiom = AxiomA2
	res := e.IsNat(e.Predecessor(x))
	e.rec.Exit(n, strconv.FormatBool(res))
	return res
}

// Equal decides x = y using A3 (a successor is never zero) and A4
// (injectivity of the successor).
func (e *Engine) Equal(x, y Nat) bool {
	n := e.rec.Enter("equal", x.Term(), y.Term())

	switch {
	case x == Zero && y == Zero:
		e.rec.Exit(n, strconv.FormatBool(true))
		return true

	case x == Zero || y == Zero:
		n.Axiom = AxiomA3
		e.rec.Exit(n, strconv.FormatBool(false))
		return false
	}

	n.Axiom = AxiomA4
	res := e.Equal(e.Predecessor(x), e.Predecessor(y))
	e.rec.Exit(n, strconv.FormatBool(res))
	return res
}

// LessThan decides x < y by the recursive definition
// lt(0,0)=false; lt(0,s(y))=true; lt(s(x),0)=false; lt(s(x),s(y))=lt(x,y).
func (e *Engine) LessThan(x, y Nat) bool {
	n := e.rec.Enter("less_than", x.Term(), y.Term())

	switch {
	case x == Zero && y == Zero:
		n.Definition = "LT-BASE"
		e.rec.Exit(n, strconv.FormatBool(false))
		return false

	case x == Zero:
		n.Definition = "LT-BASE"
		e.rec.Exit(n, strconv.FormatBool(true))
		return true

	case y == Zero:
		n.Definition = "LT-BASE"
		e.rec.Exit(n, strconv.FormatBool(false))
		return false
	}

	n.Definition = "LT-REC"
	res := e.LessThan(e.Predecessor(x), e.Predecessor(y))
	e.rec.Exit(n, strconv.FormatBool(res))
	return res
}

// GreaterThan derives x > y as (x != y) and not (x < y). The equality
// check short-circuits, so the comparison subtree only appears for
// unequal operands.
func (e *Engine) GreaterThan(x, y Nat) bool {
	n := e.rec.Enter("greater_than", x.Term(), y.Term())
	res := !e.Equal(x, y) && !e.LessThan(x, y)
	e.rec.Exit(n, strconv.FormatBool(res))
	return res
}
