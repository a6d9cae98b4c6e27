// Package stepper constructs natural numbers and fractions from the Peano
// axioms, emitting an ordered step-by-step trace of the construction.
//
// The stepper is pure and stateless: each call reads only its arguments
// and allocates only the returned trace, so it is safe to invoke
// concurrently with no coordination. Naturals are accumulated as counters
// and rendered as terms on demand; no successor chain is ever materialized.
package stepper

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/peanoworks/peano/pkg/peano"
)

// BuildNatural constructs the natural n from the Peano axioms: one step
// for zero, then one step per successor application. The trace always has
// exactly n+1 steps and its final value equals n. Negative n fails with
// peano.ErrInvalidInput and no trace is returned.
func BuildNatural(n int) (*Trace, error) {
	target, err := peano.New(n)
	if err != nil {
		return nil, err
	}

	t := newTrace()
	emitNatural(t, "", target)

	t.Final = Final{
		Kind:  KindNatural,
		Value: target.Int(),
		Term:  target.Term(),
	}
	return t, nil
}

// BuildFraction constructs the fraction num/den: the numerator's natural,
// then the denominator's natural, then a pairing step. When reduce is set
// and the fraction is reducible, a final step divides both components by
// their gcd; the reduction is skipped when the gcd is 1 and when the
// numerator is zero (0/d is reported unreduced). A non-positive
// denominator or negative numerator fails with peano.ErrInvalidInput.
func BuildFraction(num, den int, reduce bool) (*Trace, error) {
	numerator, err := peano.New(num)
	if err != nil {
		return nil, err
	}
	if den == 0 {
		return nil, fmt.Errorf("denominator cannot be 0: %w", peano.ErrInvalidInput)
	}
	denominator, err := peano.New(den)
	if err != nil {
		return nil, err
	}

	t := newTrace()
	emitNatural(t, "numerator", numerator)
	emitNatural(t, "denominator", denominator)

	t.append(Step{
		Rule: RulePair,
		Description: fmt.Sprintf("Pair numerator %d and denominator %d into the fraction %d/%d (denominator ≠ 0).",
			num, den, num, den),
		Value: fmt.Sprintf("%d/%d", num, den),
		Term:  fmt.Sprintf("%s / %s", numerator.Term(), denominator.Term()),
	})

	finalNum, finalDen := num, den
	if reduce && num > 0 {
		if g := gcd(num, den); g > 1 {
			finalNum, finalDen = num/g, den/g
			t.append(Step{
				Rule: RuleReduce,
				Description: fmt.Sprintf("Reduce by gcd=%d: %d/%d → %d/%d.",
					g, num, den, finalNum, finalDen),
				Value: fmt.Sprintf("%d/%d", finalNum, finalDen),
				Term:  fmt.Sprintf("%s / %s", peano.Nat(finalNum).Term(), peano.Nat(finalDen).Term()),
			})
		}
	}

	t.Final = Final{
		Kind:        KindFraction,
		Numerator:   finalNum,
		Denominator: finalDen,
		Term:        fmt.Sprintf("%s / %s", peano.Nat(finalNum).Term(), peano.Nat(finalDen).Term()),
	}
	return t, nil
}

// emitNatural appends the zero step and n successor steps for the target.
// label qualifies the steps when the natural is one side of a fraction.
func emitNatural(t *Trace, label string, target peano.Nat) {
	prefix := ""
	if label != "" {
		prefix = label + ": "
	}

	t.append(Step{
		Rule:        RuleZero,
		Description: prefix + "0 is a natural number (axiom A1).",
		Value:       "0",
		Term:        peano.Zero.Term(),
	})

	for i := peano.Nat(1); i <= target; i++ {
		t.append(Step{
			Rule:        RuleSuccessor,
			Description: fmt.Sprintf("%sApply successor to %d (axiom A2) → %d.", prefix, i.Int()-1, i.Int()),
			Value:       fmt.Sprintf("%d", i.Int()),
			Term:        i.Term(),
		})
	}
}

func newTrace() *Trace {
	return &Trace{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// gcd is the iterative Euclidean algorithm. Operands are positive by the
// time it is called.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
