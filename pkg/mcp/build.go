package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/peanoworks/peano/pkg/stepper"
)

var (
	buildNaturalToolName    = "build_natural"
	buildNaturalDescription = "Construct a natural number from the Peano axioms (zero and successor), returning the ordered construction trace and the final value."

	buildFractionToolName    = "build_fraction"
	buildFractionDescription = "Construct a fraction from the Peano axioms: both naturals, a pairing step, and an optional reduction to lowest terms. Returns the ordered construction trace."
)

// BuildNaturalInput represents the input arguments for the build_natural
// tool.
type BuildNaturalInput struct {
	N int `json:"n" jsonschema:"the non-negative integer to construct"`
}

// BuildFractionInput represents the input arguments for the build_fraction
// tool.
type BuildFractionInput struct {
	Numerator   int   `json:"numerator" jsonschema:"the non-negative numerator"`
	Denominator int   `json:"denominator" jsonschema:"the positive denominator"`
	Reduce      *bool `json:"reduce,omitempty" jsonschema:"reduce to lowest terms (default: true)"`
}

// BuildOutput wraps the construction trace returned by the build tools.
type BuildOutput struct {
	Trace *stepper.Trace `json:"trace"`
}

// handleBuildNatural processes a build_natural request.
func (s *Server) handleBuildNatural(_ context.Context, _ *mcp.CallToolRequest, input BuildNaturalInput) (*mcp.CallToolResult, BuildOutput, error) {
	logger := s.config.Logger

	logger.Debug("MCP build_natural request", zap.Int("n", input.N))

	if input.N > s.config.MaxOperand {
		return toolError(fmt.Sprintf("n exceeds the maximum operand %d", s.config.MaxOperand)), BuildOutput{}, nil
	}

	t, err := stepper.BuildNatural(input.N)
	if err != nil {
		return toolError(err.Error()), BuildOutput{}, nil
	}

	return nil, BuildOutput{Trace: t}, nil
}

// handleBuildFraction processes a build_fraction request.
func (s *Server) handleBuildFraction(_ context.Context, _ *mcp.CallToolRequest, input BuildFractionInput) (*mcp.CallToolResult, BuildOutput, error) {
	logger := s.config.Logger

	reduce := true
	if input.Reduce != nil {
		reduce = *input.Reduce
	}

	logger.Debug("MCP build_fraction request",
		zap.Int("numerator", input.Numerator),
		zap.Int("denominator", input.Denominator),
		zap.Bool("reduce", reduce),
	)

	if input.Numerator > s.config.MaxOperand || input.Denominator > s.config.MaxOperand {
		return toolError(fmt.Sprintf("operands exceed the maximum %d", s.config.MaxOperand)), BuildOutput{}, nil
	}

	t, err := stepper.BuildFraction(input.Numerator, input.Denominator, reduce)
	if err != nil {
		return toolError(err.Error()), BuildOutput{}, nil
	}

	return nil, BuildOutput{Trace: t}, nil
}

// toolError wraps a message as a failed tool call result.
func toolError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: msg},
		},
	}
}
