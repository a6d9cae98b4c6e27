package mcp_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/peanoworks/peano/pkg/logger"
	"github.com/peanoworks/peano/pkg/mcp"
)

var _ = Describe("NewServer", func() {
	It("creates a server with a logger and default bound", func() {
		s, err := mcp.NewServer(mcp.Config{
			Logger: logger.Nop(),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(s).NotTo(BeNil())
	})

	It("accepts an explicit operand bound", func() {
		s, err := mcp.NewServer(mcp.Config{
			MaxOperand: 100,
			Logger:     logger.Nop(),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(s).NotTo(BeNil())
	})

	It("requires a logger", func() {
		_, err := mcp.NewServer(mcp.Config{})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("logger is required"))
	})

	It("rejects a negative operand bound", func() {
		_, err := mcp.NewServer(mcp.Config{
			MaxOperand: -1,
			Logger:     logger.Nop(),
		})
		Expect(err).To(HaveOccurred())
	})
})
