// Package peano implements Peano arithmetic with full derivation tracing.
//
// Naturals are counter-backed values rendered as canonical terms
// ("0", "s(0)", "s(s(0))", ...) rather than linked successor nodes, so
// construction and rendering stay linear in the magnitude with no deep
// structures. Operations are defined by the Peano axioms (A1-A4) and their
// primitive recursive definitional extensions, and every invocation is
// recorded in a derivation trace.
package peano

import (
	"fmt"
	"strings"
)

// Nat is a Peano natural. The zero value is Zero. Construct from untrusted
// integers with New, which rejects negatives.
type Nat int

// Zero is the base natural of axiom A1.
const Zero Nat = 0

// New validates n as a Peano natural. Naturals are strictly non-negative;
// anything else fails with ErrInvalidInput.
func New(n int) (Nat, error) {
	if n < 0 {
		return 0, fmt.Errorf("peano naturals are non-negative, got %d: %w", n, ErrInvalidInput)
	}
	return Nat(n), nil
}

// Int returns the canonical integer value (the number of successor
// applications from zero).
func (n Nat) Int() int {
	return int(n)
}

// Succ returns the successor of n without recording a derivation step.
func (n Nat) Succ() Nat {
	return n + 1
}

// Term renders n as a canonical Peano term, e.g. Term(3) = "s(s(s(0)))".
func (n Nat) Term() string {
	if n == 0 {
		return "0"
	}

	var b strings.Builder
	b.Grow(int(n)*3 + 1)
	for i := Nat(0); i < n; i++ {
		b.WriteString("s(")
	}
	b.WriteByte('0')
	for i := Nat(0); i < n; i++ {
		b.WriteByte(')')
	}
	return b.String()
}

func (n Nat) String() string {
	return n.Term()
}

// ParseTerm parses a canonical Peano term ("0" or nested "s(...)"),
// tolerating whitespace. Malformed terms fail with ErrInvalidInput.
func ParseTerm(term string) (Nat, error) {
	s := strings.ReplaceAll(term, " ", "")

	n := Nat(0)
	for s != "0" {
		if !strings.HasPrefix(s, "s(") || !strings.HasSuffix(s, ")") {
			return 0, fmt.Errorf("invalid peano term %q: %w", term, ErrInvalidInput)
		}
		s = s[2 : len(s)-1]
		n++
	}
	return n, nil
}

// IsTerm reports whether s looks like a canonical Peano term.
func IsTerm(s string) bool {
	s = strings.ReplaceAll(s, " ", "")
	return s == "0" || (strings.HasPrefix(s, "s(") && strings.HasSuffix(s, ")"))
}
