package peano

import "fmt"

// Value is the display form of a natural: its canonical Peano term and
// integer value. JSON keys match the rendering the web UI consumed.
type Value struct {
	Term string `json:"peano"`
	Int  int    `json:"int"`
}

// Display returns the display form of x.
func Display(x Nat) Value {
	return Value{Term: x.Term(), Int: x.Int()}
}

// Fraction is an ordered pair of naturals with a non-zero denominator.
type Fraction struct {
	Num Nat `json:"numerator"`
	Den Nat `json:"denominator"`
}

// NewFraction pairs a numerator and denominator. A zero denominator fails
// with ErrInvalidInput.
func NewFraction(num, den Nat) (Fraction, error) {
	if den == Zero {
		return Fraction{}, fmt.Errorf("denominator cannot be 0: %w", ErrInvalidInput)
	}
	return Fraction{Num: num, Den: den}, nil
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num.Int(), f.Den.Int())
}

// FractionValue is the display form of a fraction.
type FractionValue struct {
	Numerator   Value `json:"numerator"`
	Denominator Value `json:"denominator"`
}

// DisplayFraction returns the display form of f.
func DisplayFraction(f Fraction) FractionValue {
	return FractionValue{
		Numerator:   Display(f.Num),
		Denominator: Display(f.Den),
	}
}

// FromNat embeds a natural into the fractions as x/1. The unit denominator
// is derived through the traced successor.
func (e *Engine) FromNat(x Nat) Fraction {
	return Fraction{Num: x, Den: e.Successor(Zero)}
}

// Simplify reduces f to lowest terms by dividing both components by their
// gcd. The denominator invariant keeps the gcd non-zero, so the divisions
// cannot fail.
func (e *Engine) Simplify(f Fraction) Fraction {
	g := e.Gcd(f.Num, f.Den)
	num, _ := e.Div(f.Num, g)
	den, _ := e.Div(f.Den, g)
	return Fraction{Num: num, Den: den}
}

// AddFractions derives a/b + c/d = (ad + cb) / bd, simplified.
func (e *Engine) AddFractions(a, b Fraction) Fraction {
	num := e.Add(e.Multiply(a.Num, b.Den), e.Multiply(b.Num, a.Den))
	den := e.Multiply(a.Den, b.Den)
	return e.Simplify(Fraction{Num: num, Den: den})
}

// SubtractFractions derives a/b - c/d = (ad - cb) / bd with the clamped
// subtraction, simplified.
func (e *Engine) SubtractFractions(a, b Fraction) Fraction {
	num := e.Subtract(e.Multiply(a.Num, b.Den), e.Multiply(b.Num, a.Den))
	den := e.Multiply(a.Den, b.Den)
	return e.Simplify(Fraction{Num: num, Den: den})
}

// MultiplyFractions derives (a/b) * (c/d) = ac/bd, simplified.
func (e *Engine) MultiplyFractions(a, b Fraction) Fraction {
	num := e.Multiply(a.Num, b.Num)
	den := e.Multiply(a.Den, b.Den)
	return e.Simplify(Fraction{Num: num, Den: den})
}

// DivideFractions derives (a/b) / (c/d) = ad/bc, simplified. A zero
// divisor numerator fails with ErrInvalidInput; the zero check itself is
// part of the derivation.
func (e *Engine) DivideFractions(a, b Fraction) (Fraction, error) {
	if e.Equal(b.Num, Zero) {
		return Fraction{}, fmt.Errorf("division by zero in fraction: %w", ErrInvalidInput)
	}
	num := e.Multiply(a.Num, b.Den)
	den := e.Multiply(a.Den, b.Num)
	return e.Simplify(Fraction{Num: num, Den: den}), nil
}

// DivisionCheck is the verification of the relation n = d*q + r.
type DivisionCheck struct {
	LHS     Value `json:"lhs"`
	Product Value `json:"product"`
	RHS     Value `json:"rhs"`
}

// DivisionInfo is the quotient/remainder decomposition of a fraction.
type DivisionInfo struct {
	Quotient  Value         `json:"quotient"`
	Remainder Value         `json:"remainder"`
	Check     DivisionCheck `json:"check"`
}

// FractionInfo is the full description of a fraction n/d: its gcd, its
// simplified form, and the division relation n = d*q + r.
type FractionInfo struct {
	Numerator   Value         `json:"numerator"`
	Denominator Value         `json:"denominator"`
	GCD         Value         `json:"gcd"`
	Simplified  FractionValue `json:"simplified"`
	Division    DivisionInfo  `json:"division"`
}

// DescribeFraction derives everything there is to say about num/den using
// the traced Peano operations: gcd, lowest terms, and the quotient and
// remainder together with the n = d*q + r check. A zero denominator fails
// with ErrInvalidInput.
func (e *Engine) DescribeFraction(num, den Nat) (*FractionInfo, error) {
	if den == Zero {
		return nil, fmt.Errorf("denominator cannot be 0: %w", ErrInvalidInput)
	}

	g := e.Gcd(num, den)
	simpNum, _ := e.Div(num, g)
	simpDen, _ := e.Div(den, g)

	q, _ := e.Div(num, den)
	r, _ := e.Mod(num, den)
	product := e.Multiply(den, q)
	rhs := e.Add(product, r)

	return &FractionInfo{
		Numerator:   Display(num),
		Denominator: Display(den),
		GCD:         Display(g),
		Simplified: FractionValue{
			Numerator:   Display(simpNum),
			Denominator: Display(simpDen),
		},
		Division: DivisionInfo{
			Quotient:  Display(q),
			Remainder: Display(r),
			Check: DivisionCheck{
				LHS:     Display(num),
				Product: Display(product),
				RHS:     Display(rhs),
			},
		},
	}, nil
}
