package trace

// Recorder builds a derivation trace through an explicit node stack.
// Each Enter counts one derivation step; the first node entered after a
// Start becomes the root of the trace tree.
//
// A Recorder is not safe for concurrent use; engines own one per
// invocation sequence.
type Recorder struct {
	stack    []*Node
	root     *Node
	steps    int
	negative bool
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Start resets the recorder: step counter, negative flag, stack, and root.
func (r *Recorder) Start() {
	r.stack = r.stack[:0]
	r.root = nil
	r.steps = 0
	r.negative = false
}

// Enter opens a new node as a child of the currently open node (or as the
// root if none is open) and counts one derivation step.
func (r *Recorder) Enter(op string, args ...string) *Node {
	r.steps++

	n := &Node{
		Op:   op,
		Args: append([]string(nil), args...),
	}

	if len(r.stack) == 0 {
		r.root = n
	} else {
		parent := r.stack[len(r.stack)-1]
		parent.Children = append(parent.Children, n)
	}

	r.stack = append(r.stack, n)
	return n
}

// Exit records the node's result and closes it. The node must be the
// currently open node; out-of-order exits are ignored so that callers
// unwinding an explicit stack cannot corrupt the tree.
func (r *Recorder) Exit(n *Node, result string) {
	n.Result = result
	if len(r.stack) > 0 && r.stack[len(r.stack)-1] == n {
		r.stack = r.stack[:len(r.stack)-1]
	}
}

// Steps returns the number of derivation steps since the last Start.
func (r *Recorder) Steps() int {
	return r.steps
}

// MarkNegative records that a clamped (would-be negative) subtraction
// occurred during the derivation.
func (r *Recorder) MarkNegative() {
	r.negative = true
}

// NegativeEncountered reports whether a clamped subtraction occurred.
func (r *Recorder) NegativeEncountered() bool {
	return r.negative
}

// Root returns the root of the trace tree, or nil if nothing was recorded.
func (r *Recorder) Root() *Node {
	return r.root
}

// Flatten walks the trace tree in pre-order and returns depth-annotated
// nodes. The walk is iterative; trace trees can be as deep as the operand
// magnitude.
func (r *Recorder) Flatten() []Flat {
	if r.root == nil {
		return nil
	}

	type frame struct {
		node  *Node
		depth int
	}

	var out []Flat
	stack := []frame{{r.root, 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		out = append(out, Flat{
			Depth:      f.depth,
			Op:         f.node.Op,
			Args:       f.node.Args,
			Result:     f.node.Result,
			Axiom:      f.node.Axiom,
			Definition: f.node.Definition,
		})

		// Push children in reverse so they pop in order.
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.Children[i], f.depth + 1})
		}
	}

	return out
}
