// Package mcpcmder provides the mcp command for serving the Peano engines
// as MCP tools over stdio.
package mcpcmder

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/peanoworks/peano/pkg/config"
	"github.com/peanoworks/peano/pkg/logger"
	"github.com/peanoworks/peano/pkg/mcp"
)

type mcpCommander struct {
	maxOperand int

	debug  bool
	logger *zap.Logger
}

const mcpLongDesc string = `Serve the Peano engines as MCP tools over stdio.

Exposes build_natural, build_fraction, and evaluate so MCP clients can
construct values and derive arithmetic with full traces. The server
speaks the Model Context Protocol on stdin/stdout; logs go to stderr.

Example client registration:
  claude mcp add peano -- peano mcp`

const mcpShortDesc string = "Serve Peano tools over the Model Context Protocol"

func NewMCPCmd() *cobra.Command {
	cmder := &mcpCommander{}

	flagSet := config.DefaultFlagSet()
	boundFlags := []string{config.FlagMaxOperand}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: mcpShortDesc,
		Long:  mcpLongDesc,
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			configDir, _ := cmd.Flags().GetString("config-dir")

			v, err := config.InitViper(configDir)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			config.BindRegisteredFlags(v, cmd, flagSet, boundFlags)

			cmder.maxOperand = v.GetInt("limits.max_operand")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}

			return cmder.run(cmd)
		},
	}

	config.AddIntFlag(cmd, flagSet, config.FlagMaxOperand, &cmder.maxOperand)

	return cmd
}

func (c *mcpCommander) run(cmd *cobra.Command) error {
	// Stdout carries the MCP protocol, so logs go to stderr.
	c.logger = logger.NewLoggerWithWriters(c.debug, cmd.ErrOrStderr())
	defer func() { _ = c.logger.Sync() }()

	server, err := mcp.NewServer(mcp.Config{
		MaxOperand: c.maxOperand,
		Logger:     c.logger,
	})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c.logger.Info("starting MCP server on stdio", zap.Int("max_operand", c.maxOperand))

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("running MCP server: %w", err)
	}
	return nil
}
