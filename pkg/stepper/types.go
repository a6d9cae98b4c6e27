package stepper

// Rule identifies the construction rule a step applied.
type Rule string

const (
	// RuleZero introduces zero (axiom A1).
	RuleZero Rule = "zero"

	// RuleSuccessor applies the successor function (axiom A2).
	RuleSuccessor Rule = "successor"

	// RulePair combines two naturals into a fraction.
	RulePair Rule = "pair"

	// RuleReduce divides both fraction components by their gcd.
	RuleReduce Rule = "reduce"
)

// Kinds of final values.
const (
	KindNatural  = "natural"
	KindFraction = "fraction"
)

// Step is one immutable construction action: the rule applied, a
// human-readable description, and the running value at that point.
type Step struct {
	// Index is the zero-based position of the step in the trace.
	Index int `json:"index"`

	// Rule is the construction rule applied.
	Rule Rule `json:"rule"`

	// Description is the human-readable account of the action.
	Description string `json:"description"`

	// Value is the running value after the step ("3" or "2/3").
	Value string `json:"value"`

	// Term is the canonical Peano rendering of the running value.
	Term string `json:"term"`
}

// Final is the constructed value a trace arrives at.
type Final struct {
	// Kind is "natural" or "fraction".
	Kind string `json:"kind"`

	// Value is the canonical integer for naturals.
	Value int `json:"value,omitempty"`

	// Numerator and Denominator hold the (possibly reduced) fraction.
	Numerator   int `json:"numerator,omitempty"`
	Denominator int `json:"denominator,omitempty"`

	// Term is the canonical Peano rendering.
	Term string `json:"term"`
}

// Trace is an ordered sequence of construction steps plus the final value.
// Built fresh per request, owned solely by the caller, and discarded after
// rendering; there is no persistent lifecycle.
type Trace struct {
	// ID identifies the trace for logging and correlation.
	ID string `json:"id"`

	// CreatedAt is the UTC build time in RFC 3339 form.
	CreatedAt string `json:"created_at"`

	Steps []Step `json:"steps"`
	Final Final  `json:"final"`
}

func (t *Trace) append(s Step) {
	s.Index = len(t.Steps)
	t.Steps = append(t.Steps, s)
}
