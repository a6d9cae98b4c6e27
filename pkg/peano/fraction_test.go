package peano_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/peanoworks/peano/pkg/peano"
)

// frac builds a Fraction for tests.
func frac(num, den int) peano.Fraction {
	f, err := peano.NewFraction(nat(num), nat(den))
	Expect(err).NotTo(HaveOccurred())
	return f
}

var _ = Describe("Fractions", func() {
	var e *peano.Engine

	BeforeEach(func() {
		e = newEngine()
	})

	Describe("NewFraction", func() {
		It("pairs a numerator and denominator", func() {
			f, err := peano.NewFraction(nat(2), nat(3))
			Expect(err).NotTo(HaveOccurred())
			Expect(f.String()).To(Equal("2/3"))
		})

		It("rejects a zero denominator", func() {
			_, err := peano.NewFraction(nat(2), peano.Zero)
			Expect(err).To(MatchError(peano.ErrInvalidInput))
		})
	})

	Describe("FromNat", func() {
		It("embeds a natural as x/1", func() {
			f := e.FromNat(nat(4))
			Expect(f.String()).To(Equal("4/1"))
		})
	})

	Describe("Simplify", func() {
		DescribeTable("reduces to lowest terms",
			func(num, den int, want string) {
				Expect(e.Simplify(frac(num, den)).String()).To(Equal(want))
			},
			Entry("6/9", 6, 9, "2/3"),
			Entry("48/18", 48, 18, "8/3"),
			Entry("2/3 already reduced", 2, 3, "2/3"),
			Entry("5/5", 5, 5, "1/1"),
			Entry("0/5", 0, 5, "0/1"),
		)
	})

	Describe("AddFractions", func() {
		DescribeTable("derives sums",
			func(a, b, c, d int, want string) {
				Expect(e.AddFractions(frac(a, b), frac(c, d)).String()).To(Equal(want))
			},
			Entry("1/2 + 1/3", 1, 2, 1, 3, "5/6"),
			Entry("1/2 + 1/2", 1, 2, 1, 2, "1/1"),
			Entry("1/6 + 1/3", 1, 6, 1, 3, "1/2"),
			Entry("0/1 + 2/3", 0, 1, 2, 3, "2/3"),
		)
	})

	Describe("SubtractFractions", func() {
		It("derives in-range differences", func() {
			Expect(e.SubtractFractions(frac(1, 2), frac(1, 3)).String()).To(Equal("1/6"))
		})

		It("clamps when the result would be negative", func() {
			res := e.SubtractFractions(frac(1, 3), frac(1, 2))
			Expect(res.String()).To(Equal("0/1"))
			Expect(e.NegativeEncountered()).To(BeTrue())
		})
	})

	Describe("MultiplyFractions", func() {
		DescribeTable("derives products",
			func(a, b, c, d int, want string) {
				Expect(e.MultiplyFractions(frac(a, b), frac(c, d)).String()).To(Equal(want))
			},
			Entry("1/2 * 2/3", 1, 2, 2, 3, "1/3"),
			Entry("3/4 * 4/3", 3, 4, 4, 3, "1/1"),
			Entry("0/2 * 5/7", 0, 2, 5, 7, "0/1"),
		)
	})

	Describe("DivideFractions", func() {
		It("derives quotients", func() {
			res, err := e.DivideFractions(frac(1, 2), frac(3, 4))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.String()).To(Equal("2/3"))
		})

		It("rejects division by a zero fraction", func() {
			_, err := e.DivideFractions(frac(1, 2), frac(0, 4))
			Expect(err).To(MatchError(peano.ErrInvalidInput))
		})

		It("derives the zero check as part of the trace", func() {
			_, err := e.DivideFractions(frac(1, 2), frac(0, 4))
			Expect(err).To(HaveOccurred())
			Expect(e.Steps()).To(BeNumerically(">", 0))
		})
	})

	Describe("DescribeFraction", func() {
		It("reports gcd, lowest terms, and the division relation", func() {
			info, err := e.DescribeFraction(nat(17), nat(5))
			Expect(err).NotTo(HaveOccurred())

			Expect(info.GCD.Int).To(Equal(1))
			Expect(info.Simplified.Numerator.Int).To(Equal(17))
			Expect(info.Simplified.Denominator.Int).To(Equal(5))
			Expect(info.Division.Quotient.Int).To(Equal(3))
			Expect(info.Division.Remainder.Int).To(Equal(2))
			Expect(info.Division.Check.LHS.Int).To(Equal(17))
			Expect(info.Division.Check.Product.Int).To(Equal(15))
			Expect(info.Division.Check.RHS.Int).To(Equal(17))
		})

		It("reduces a reducible fraction", func() {
			info, err := e.DescribeFraction(nat(6), nat(9))
			Expect(err).NotTo(HaveOccurred())

			Expect(info.GCD.Int).To(Equal(3))
			Expect(info.Simplified.Numerator.Int).To(Equal(2))
			Expect(info.Simplified.Denominator.Int).To(Equal(3))
		})

		It("rejects a zero denominator", func() {
			_, err := e.DescribeFraction(nat(3), peano.Zero)
			Expect(err).To(MatchError(peano.ErrInvalidInput))
		})

		It("renders Peano terms alongside integers", func() {
			info, err := e.DescribeFraction(nat(4), nat(2))
			Expect(err).NotTo(HaveOccurred())

			Expect(info.Numerator.Term).To(Equal("s(s(s(s(0))))"))
			Expect(info.Simplified.Numerator.Term).To(Equal("s(s(0))"))
			Expect(info.Simplified.Denominator.Term).To(Equal("s(0)"))
		})
	})
})
