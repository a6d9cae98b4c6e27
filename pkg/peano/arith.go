package peano

// Defining equations recorded on trace nodes.
const (
	DefAddBase = "ADD-BASE" // add(x,0) = x
	DefAddRec  = "ADD-REC"  // add(x,s(y)) = s(add(x,y))
	DefMulBase = "MULT-BASE" // mult(x,0) = 0
	DefMulRec  = "MULT-REC"  // mult(x,s(y)) = mult(x,y) + x
	DefSubBase = "SUB-BASE" // sub(x,0) = x; sub(0,s(y)) = 0 (clamped)
	DefSubRec  = "SUB-REC"  // sub(s(x),s(y)) = sub(x,y)
)

// Add derives x + y by primitive recursion on y:
// add(x,0) = x; add(x,s(y)) = s(add(x,y)).
func (e *Engine) Add(x, y Nat) Nat {
	n := e.rec.Enter("add", x.Term(), y.Term())

	if y == Zero {
		n.Definition = DefAddBase
		e.rec.Exit(n, x.Term())
		return x
	}

	n.Definition = DefAddRec
	inner := e.Predecessor(y)
	res := e.Add(x, inner) + 1
	e.rec.Exit(n, res.Term())
	return res
}

// Multiply derives x * y by primitive recursion on y:
// mult(x,0) = 0; mult(x,s(y)) = mult(x,y) + x.
func (e *Engine) Multiply(x, y Nat) Nat {
	n := e.rec.Enter("multiply", x.Term(), y.Term())

	if y == Zero {
		n.Definition = DefMulBase
		e.rec.Exit(n, Zero.Term())
		return Zero
	}

	n.Definition = DefMulRec
	inner := e.Predecessor(y)
	partial := e.Multiply(x, inner)
	res := e.Add(partial, x)
	e.rec.Exit(n, res.Term())
	return res
}

// Subtract derives x - y, clamped at zero. A would-be negative result
// marks the derivation so callers can surface the clamp to the user.
func (e *Engine) Subtract(x, y Nat) Nat {
	n := e.rec.Enter("subtract", x.Term(), y.Term())

	if y == Zero {
		n.Definition = DefSubBase
		e.rec.Exit(n, x.Term())
		return x
	}

	if x == Zero {
		n.Definition = DefSubBase
		e.rec.MarkNegative()
		e.rec.Exit(n, Zero.Term())
		return Zero
	}

	n.Definition = DefSubRec
	res := e.Subtract(e.Predecessor(x), e.Predecessor(y))
	e.rec.Exit(n, res.Term())
	return res
}
