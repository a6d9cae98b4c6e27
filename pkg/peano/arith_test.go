package peano_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/peanoworks/peano/pkg/peano"
)

var _ = Describe("Engine arithmetic", func() {
	var e *peano.Engine

	BeforeEach(func() {
		e = newEngine()
	})

	Describe("Add", func() {
		DescribeTable("derives sums",
			func(x, y, want int) {
				Expect(e.Add(nat(x), nat(y))).To(Equal(nat(want)))
			},
			Entry("0 + 0", 0, 0, 0),
			Entry("0 + 5", 0, 5, 5),
			Entry("5 + 0", 5, 0, 5),
			Entry("2 + 3", 2, 3, 5),
			Entry("7 + 8", 7, 8, 15),
		)

		It("tags the base case", func() {
			e.Add(nat(4), peano.Zero)
			Expect(e.TraceRoot().Definition).To(Equal(peano.DefAddBase))
		})

		It("tags the recursive case and nests the sub-derivation", func() {
			e.Add(nat(2), nat(3))

			root := e.TraceRoot()
			Expect(root.Definition).To(Equal(peano.DefAddRec))
			Expect(root.Result).To(Equal("s(s(s(s(s(0)))))"))

			// predecessor of y, then the inner addition
			Expect(len(root.Children)).To(BeNumerically(">=", 2))
			Expect(root.Children[0].Op).To(Equal("predecessor"))
			Expect(root.Children[1].Op).To(Equal("add"))
		})

		It("counts one step per recursive unfold plus bookkeeping", func() {
			e.Add(nat(2), nat(3))
			// add appears 4 times (y = 3, 2, 1, 0), predecessor 3 times.
			Expect(e.Steps()).To(Equal(7))
		})
	})

	Describe("Multiply", func() {
		DescribeTable("derives products",
			func(x, y, want int) {
				Expect(e.Multiply(nat(x), nat(y))).To(Equal(nat(want)))
			},
			Entry("0 * 0", 0, 0, 0),
			Entry("0 * 4", 0, 4, 0),
			Entry("4 * 0", 4, 0, 0),
			Entry("1 * 7", 1, 7, 7),
			Entry("3 * 4", 3, 4, 12),
			Entry("6 * 7", 6, 7, 42),
		)

		It("tags base and recursive cases", func() {
			e.Multiply(nat(3), peano.Zero)
			Expect(e.TraceRoot().Definition).To(Equal(peano.DefMulBase))

			e.StartTrace()
			e.Multiply(nat(3), nat(2))
			Expect(e.TraceRoot().Definition).To(Equal(peano.DefMulRec))
		})

		It("derives the recursive case through addition", func() {
			e.Multiply(nat(2), nat(2))

			ops := make(map[string]bool)
			for _, f := range e.Trace() {
				ops[f.Op] = true
			}
			Expect(ops).To(HaveKey("add"))
		})
	})

	Describe("Subtract", func() {
		DescribeTable("derives clamped differences",
			func(x, y, want int) {
				Expect(e.Subtract(nat(x), nat(y))).To(Equal(nat(want)))
			},
			Entry("5 - 0", 5, 0, 5),
			Entry("5 - 3", 5, 3, 2),
			Entry("3 - 3", 3, 3, 0),
			Entry("2 - 5 clamps", 2, 5, 0),
			Entry("0 - 4 clamps", 0, 4, 0),
		)

		It("does not flag in-range subtraction", func() {
			e.Subtract(nat(5), nat(3))
			Expect(e.NegativeEncountered()).To(BeFalse())
		})

		It("flags a would-be negative result", func() {
			e.Subtract(nat(2), nat(5))
			Expect(e.NegativeEncountered()).To(BeTrue())
		})

		It("does not flag an exact zero difference", func() {
			e.Subtract(nat(3), nat(3))
			Expect(e.NegativeEncountered()).To(BeFalse())
		})
	})
})
