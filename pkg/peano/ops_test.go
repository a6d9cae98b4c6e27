package peano_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/peanoworks/peano/pkg/peano"
)

var _ = Describe("Operations", func() {
	Describe("CanonicalOp", func() {
		It("passes canonical names through", func() {
			op, ok := peano.CanonicalOp("add")
			Expect(ok).To(BeTrue())
			Expect(op).To(Equal("add"))
		})

		DescribeTable("resolves aliases",
			func(alias, want string) {
				op, ok := peano.CanonicalOp(alias)
				Expect(ok).To(BeTrue())
				Expect(op).To(Equal(want))
			},
			Entry("succ", "succ", "successor"),
			Entry("pred", "pred", "predecessor"),
			Entry("sub", "sub", "subtract"),
			Entry("mul", "mul", "multiply"),
			Entry("lt", "lt", "less_than"),
			Entry("eq", "eq", "equal"),
			Entry("gt", "gt", "greater_than"),
		)

		It("rejects unknown operations", func() {
			_, ok := peano.CanonicalOp("exponentiate")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Arity", func() {
		It("reports one operand for successor and predecessor", func() {
			for _, op := range []string{"successor", "pred"} {
				arity, ok := peano.Arity(op)
				Expect(ok).To(BeTrue())
				Expect(arity).To(Equal(1))
			}
		})

		It("reports two operands for everything else", func() {
			for _, op := range []string{"add", "sub", "mul", "div", "mod", "gcd", "lt", "eq", "gt"} {
				arity, ok := peano.Arity(op)
				Expect(ok).To(BeTrue())
				Expect(arity).To(Equal(2))
			}
		})
	})

	Describe("OpNames", func() {
		It("lists every dispatchable operation", func() {
			names := peano.OpNames()
			Expect(names).To(HaveLen(11))
			for _, name := range names {
				_, ok := peano.CanonicalOp(name)
				Expect(ok).To(BeTrue())
			}
		})
	})

	Describe("Apply", func() {
		var e *peano.Engine

		BeforeEach(func() {
			e = peano.NewEngine()
			e.StartTrace()
		})

		It("dispatches arithmetic to a natural result", func() {
			res, err := e.Apply("add", nat(2), nat(3))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.IsBool).To(BeFalse())
			Expect(res.Nat).To(Equal(nat(5)))
		})

		It("dispatches comparisons to a boolean result", func() {
			res, err := e.Apply("lt", nat(2), nat(5))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.IsBool).To(BeTrue())
			Expect(res.Bool).To(BeTrue())
		})

		It("ignores the second operand for unary operations", func() {
			res, err := e.Apply("succ", nat(4), peano.Zero)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Nat).To(Equal(nat(5)))
		})

		It("propagates zero-divisor failures", func() {
			_, err := e.Apply("div", nat(4), peano.Zero)
			Expect(err).To(MatchError(peano.ErrInvalidInput))
		})

		It("fails on unknown operations", func() {
			_, err := e.Apply("power", nat(2), nat(3))
			Expect(err).To(MatchError(peano.ErrInvalidInput))
		})
	})
})
