package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/peanoworks/peano/pkg/peano"
)

var (
	evaluateToolName    = "evaluate"
	evaluateDescription = "Evaluate a Peano arithmetic operation (" +
		strings.Join(peano.OpNames(), ", ") +
		") and return the result together with the axiom-level derivation trace."
)

// EvaluateInput represents the input arguments for the evaluate tool.
type EvaluateInput struct {
	Operation    string `json:"operation" jsonschema:"the operation name, e.g. add, multiply, gcd, less_than"`
	X            int    `json:"x" jsonschema:"the first operand (non-negative)"`
	Y            int    `json:"y,omitempty" jsonschema:"the second operand (non-negative, unused for successor/predecessor)"`
	MaxDepth     *int   `json:"max_depth,omitempty" jsonschema:"deepest derivation level to include (default: 10)"`
	ShowInternal bool   `json:"show_internal,omitempty" jsonschema:"include successor/predecessor bookkeeping steps"`
}

// EvaluateOutput represents the output of the evaluate tool.
type EvaluateOutput struct {
	Operation       string       `json:"operation"`
	X               peano.Value  `json:"x"`
	Y               *peano.Value `json:"y,omitempty"`
	Result          *peano.Value `json:"result,omitempty"`
	ResultBool      *bool        `json:"result_bool,omitempty"`
	Steps           int          `json:"steps"`
	NegativeClamped bool         `json:"negative_clamped"`
	Trace           []peano.Step `json:"trace"`
}

// handleEvaluate processes an evaluate request.
func (s *Server) handleEvaluate(_ context.Context, _ *mcp.CallToolRequest, input EvaluateInput) (*mcp.CallToolResult, EvaluateOutput, error) {
	logger := s.config.Logger

	logger.Debug("MCP evaluate request",
		zap.String("operation", input.Operation),
		zap.Int("x", input.X),
		zap.Int("y", input.Y),
	)

	if input.X > s.config.MaxOperand || input.Y > s.config.MaxOperand {
		return toolError(fmt.Sprintf("operands exceed the maximum %d", s.config.MaxOperand)), EvaluateOutput{}, nil
	}

	x, err := peano.New(input.X)
	if err != nil {
		return toolError(err.Error()), EvaluateOutput{}, nil
	}
	y, err := peano.New(input.Y)
	if err != nil {
		return toolError(err.Error()), EvaluateOutput{}, nil
	}

	eng := peano.NewEngine()
	eng.StartTrace()

	res, err := eng.Apply(input.Operation, x, y)
	if err != nil {
		return toolError(err.Error()), EvaluateOutput{}, nil
	}

	maxDepth := 10
	if input.MaxDepth != nil {
		maxDepth = *input.MaxDepth
	}

	steps := peano.FilterDisplay(peano.Enrich(eng.Trace()), maxDepth, input.ShowInternal)

	canonical, _ := peano.CanonicalOp(input.Operation)
	out := EvaluateOutput{
		Operation:       canonical,
		X:               peano.Display(x),
		Steps:           eng.Steps(),
		NegativeClamped: eng.NegativeEncountered(),
		Trace:           steps,
	}

	if arity, _ := peano.Arity(canonical); arity == 2 {
		yv := peano.Display(y)
		out.Y = &yv
	}

	if res.IsBool {
		b := res.Bool
		out.ResultBool = &b
	} else {
		rv := peano.Display(res.Nat)
		out.Result = &rv
	}

	return nil, out, nil
}
