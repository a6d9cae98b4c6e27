// Package mcp provides an MCP (Model Context Protocol) server exposing the
// Peano construction and derivation engines as tools.
package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/peanoworks/peano/pkg/utils"
)

type Config struct {
	// MaxOperand bounds tool inputs so trace payloads stay reasonable.
	// Zero means the default bound.
	MaxOperand int

	// Logger is the configured zap logger
	Logger *zap.Logger
}

const defaultMaxOperand = 5000

type Server struct {
	config    Config
	mcpServer *mcp.Server
}

// NewServer creates a new MCP server with the construction and derivation
// tools registered.
func NewServer(c Config) (*Server, error) {
	if c.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if c.MaxOperand < 0 {
		return nil, errors.New("max operand must be non-negative")
	}
	if c.MaxOperand == 0 {
		c.MaxOperand = defaultMaxOperand
	}

	s := &Server{
		config: c,
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "peano",
			Version: utils.Version,
		},
		&mcp.ServerOptions{},
	)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        buildNaturalToolName,
		Description: buildNaturalDescription,
	}, s.handleBuildNatural)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        buildFractionToolName,
		Description: buildFractionDescription,
	}, s.handleBuildFraction)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        evaluateToolName,
		Description: evaluateDescription,
	}, s.handleEvaluate)

	s.mcpServer = mcpServer

	return s, nil
}

// Run serves MCP over stdio until the context is cancelled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
