// Package trace records derivation traces produced by the Peano engines.
//
// A trace is a tree of nodes, one per operation invocation, built through an
// explicit enter/exit stack so callers can record nested derivations from
// either recursive or iterative code. The tree is flattened to a
// depth-annotated pre-order sequence for display.
package trace

// Node is a single derivation node: one operation invocation together with
// its arguments, result, and nested sub-derivations.
type Node struct {
	// Op is the operation name (e.g. "add", "gcd", "div_step").
	Op string `json:"op"`

	// Args are the operand renderings at the time the node was entered.
	Args []string `json:"args"`

	// Result is the rendering of the operation's result, set on exit.
	Result string `json:"result"`

	// Axiom names the Peano axiom the node appeals to (A1-A4), if any.
	Axiom string `json:"axiom,omitempty"`

	// Definition names the defining equation used (e.g. ADD-BASE, ADD-REC).
	Definition string `json:"definition,omitempty"`

	// Children are the sub-derivations performed while this node was open.
	Children []*Node `json:"children,omitempty"`
}

// Flat is a depth-annotated node from a pre-order walk of the trace tree.
type Flat struct {
	Depth      int      `json:"depth"`
	Op         string   `json:"op"`
	Args       []string `json:"args"`
	Result     string   `json:"result"`
	Axiom      string   `json:"axiom,omitempty"`
	Definition string   `json:"definition,omitempty"`
}
