package peano

import (
	"github.com/peanoworks/peano/pkg/trace"
)

// Engine evaluates Peano arithmetic while recording a derivation trace.
//
// Each operation invocation counts one derivation step and contributes a
// node to the trace tree, nested under whatever operation invoked it. The
// engine keeps no state besides the recorder, so a fresh Engine (or a
// StartTrace) gives a clean, request-scoped derivation.
//
// An Engine is not safe for concurrent use; create one per request.
type Engine struct {
	rec *trace.Recorder
}

func NewEngine() *Engine {
	return &Engine{rec: trace.NewRecorder()}
}

// StartTrace resets the derivation: step counter, negative-encountered
// flag, and the trace tree.
func (e *Engine) StartTrace() {
	e.rec.Start()
}

// Steps returns the number of derivation steps since the last StartTrace.
func (e *Engine) Steps() int {
	return e.rec.Steps()
}

// NegativeEncountered reports whether a subtraction clamped at zero during
// the current derivation.
func (e *Engine) NegativeEncountered() bool {
	return e.rec.NegativeEncountered()
}

// TraceRoot returns the root node of the current derivation tree.
func (e *Engine) TraceRoot() *trace.Node {
	return e.rec.Root()
}

// Trace returns the current derivation flattened to depth-annotated nodes.
func (e *Engine) Trace() []trace.Flat {
	return e.rec.Flatten()
}
