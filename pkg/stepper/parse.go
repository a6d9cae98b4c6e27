package stepper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/peanoworks/peano/pkg/peano"
)

// Target is a parsed construction request: a natural number, or a
// numerator/denominator pair when Fraction is set.
type Target struct {
	N        int
	Num      int
	Den      int
	Fraction bool
}

// ParseTarget parses a construction target of the form "3" or "6/9".
// Operands must be base-10 non-negative integers.
func ParseTarget(s string) (Target, error) {
	s = strings.TrimSpace(s)

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := parseOperand(num)
		if err != nil {
			return Target{}, err
		}
		d, err := parseOperand(den)
		if err != nil {
			return Target{}, err
		}
		return Target{Num: n, Den: d, Fraction: true}, nil
	}

	n, err := parseOperand(s)
	if err != nil {
		return Target{}, err
	}
	return Target{N: n}, nil
}

func parseOperand(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer: %w", s, peano.ErrInvalidInput)
	}
	if n < 0 {
		return 0, fmt.Errorf("%d is negative: %w", n, peano.ErrInvalidInput)
	}
	return n, nil
}
