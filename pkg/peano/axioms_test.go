package peano_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/peanoworks/peano/pkg/peano"
)

// nat builds a Nat for tests, failing the spec on invalid input.
func nat(v int) peano.Nat {
	n, err := peano.New(v)
	Expect(err).NotTo(HaveOccurred())
	return n
}

func newEngine() *peano.Engine {
	e := peano.NewEngine()
	e.StartTrace()
	return e
}

var _ = Describe("Engine axioms", func() {
	var e *peano.Engine

	BeforeEach(func() {
		e = newEngine()
	})

	Describe("IsZero", func() {
		It("holds for zero and records axiom A1", func() {
			Expect(e.IsZero(peano.Zero)).To(BeTrue())
			Expect(e.TraceRoot().Axiom).To(Equal(peano.AxiomA1))
		})

		It("fails for successors", func() {
			Expect(e.IsZero(nat(1))).To(BeFalse())
		})
	})

	Describe("Successor", func() {
		It("increments and records the step", func() {
			Expect(e.Successor(nat(2))).To(Equal(nat(3)))
			Expect(e.Steps()).To(Equal(1))
			Expect(e.TraceRoot().Op).To(Equal("successor"))
			Expect(e.TraceRoot().Result).To(Equal("s(s(s(0)))"))
		})
	})

	Describe("Predecessor", func() {
		It("decrements positive naturals", func() {
			Expect(e.Predecessor(nat(3))).To(Equal(nat(2)))
		})

		It("clamps at zero", func() {
			Expect(e.Predecessor(peano.Zero)).To(Equal(peano.Zero))
		})
	})

	Describe("IsNat", func() {
		It("derives zero directly from A1", func() {
			Expect(e.IsNat(peano.Zero)).To(BeTrue())
			Expect(e.TraceRoot().Axiom).To(Equal(peano.AxiomA1))
		})

		It("descends through A2 for successors", func() {
			Expect(e.IsNat(nat(3))).To(BeTrue())
			Expect(e.TraceRoot().Axiom).To(Equal(peano.AxiomA2))
			Expect(e.Steps()).To(BeNumerically(">", 3))
		})
	})

	Describe("Equal", func() {
		DescribeTable("decides equality",
			func(x, y int, want bool) {
				Expect(e.Equal(nat(x), nat(y))).To(Equal(want))
			},
			Entry("0 = 0", 0, 0, true),
			Entry("0 = 1", 0, 1, false),
			Entry("1 = 0", 1, 0, false),
			Entry("3 = 3", 3, 3, true),
			Entry("3 = 5", 3, 5, false),
		)

		It("records A3 when exactly one side is zero", func() {
			e.Equal(peano.Zero, nat(2))
			Expect(e.TraceRoot().Axiom).To(Equal(peano.AxiomA3))
		})

		It("records A4 when descending on both sides", func() {
			e.Equal(nat(2), nat(2))
			Expect(e.TraceRoot().Axiom).To(Equal(peano.AxiomA4))
		})
	})

	Describe("LessThan", func() {
		DescribeTable("decides the order",
			func(x, y int, want bool) {
				Expect(e.LessThan(nat(x), nat(y))).To(Equal(want))
			},
			Entry("0 < 0", 0, 0, false),
			Entry("0 < 1", 0, 1, true),
			Entry("1 < 0", 1, 0, false),
			Entry("2 < 5", 2, 5, true),
			Entry("5 < 2", 5, 2, false),
			Entry("4 < 4", 4, 4, false),
		)

		It("tags base cases and recursive cases", func() {
			e.LessThan(peano.Zero, nat(1))
			Expect(e.TraceRoot().Definition).To(Equal("LT-BASE"))

			e.StartTrace()
			e.LessThan(nat(2), nat(3))
			Expect(e.TraceRoot().Definition).To(Equal("LT-REC"))
		})
	})

	Describe("GreaterThan", func() {
		DescribeTable("derives the reverse order",
			func(x, y int, want bool) {
				Expect(e.GreaterThan(nat(x), nat(y))).To(Equal(want))
			},
			Entry("5 > 2", 5, 2, true),
			Entry("2 > 5", 2, 5, false),
			Entry("3 > 3", 3, 3, false),
			Entry("1 > 0", 1, 0, true),
		)

		It("short-circuits the order check for equal operands", func() {
			e.GreaterThan(nat(2), nat(2))

			// Only the equality subtree appears under the root.
			ops := make(map[string]bool)
			for _, f := range e.Trace() {
				ops[f.Op] = true
			}
			Expect(ops).NotTo(HaveKey("less_than"))
		})
	})
})
