package stepper_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/peanoworks/peano/pkg/peano"
	"github.com/peanoworks/peano/pkg/stepper"
)

var _ = Describe("BuildNatural", func() {
	It("constructs zero in a single axiom step", func() {
		t, err := stepper.BuildNatural(0)
		Expect(err).NotTo(HaveOccurred())

		Expect(t.Steps).To(HaveLen(1))
		Expect(t.Steps[0].Rule).To(Equal(stepper.RuleZero))
		Expect(t.Steps[0].Value).To(Equal("0"))
		Expect(t.Final.Kind).To(Equal(stepper.KindNatural))
		Expect(t.Final.Value).To(Equal(0))
		Expect(t.Final.Term).To(Equal("0"))
	})

	It("constructs n in exactly n+1 steps", func() {
		t, err := stepper.BuildNatural(5)
		Expect(err).NotTo(HaveOccurred())

		Expect(t.Steps).To(HaveLen(6))
		Expect(t.Steps[0].Rule).To(Equal(stepper.RuleZero))
		for _, s := range t.Steps[1:] {
			Expect(s.Rule).To(Equal(stepper.RuleSuccessor))
		}
	})

	It("numbers steps consecutively from zero", func() {
		t, err := stepper.BuildNatural(3)
		Expect(err).NotTo(HaveOccurred())

		for i, s := range t.Steps {
			Expect(s.Index).To(Equal(i))
		}
	})

	It("carries the running value and term on every step", func() {
		t, err := stepper.BuildNatural(3)
		Expect(err).NotTo(HaveOccurred())

		Expect(t.Steps[1].Value).To(Equal("1"))
		Expect(t.Steps[1].Term).To(Equal("s(0)"))
		Expect(t.Steps[3].Value).To(Equal("3"))
		Expect(t.Steps[3].Term).To(Equal("s(s(s(0)))"))
		Expect(t.Final.Value).To(Equal(3))
		Expect(t.Final.Term).To(Equal("s(s(s(0)))"))
	})

	It("rejects negative input with no trace", func() {
		t, err := stepper.BuildNatural(-2)
		Expect(err).To(MatchError(peano.ErrInvalidInput))
		Expect(t).To(BeNil())
	})

	It("stamps each trace with an id and creation time", func() {
		a, err := stepper.BuildNatural(1)
		Expect(err).NotTo(HaveOccurred())
		b, err := stepper.BuildNatural(1)
		Expect(err).NotTo(HaveOccurred())

		Expect(a.ID).NotTo(BeEmpty())
		Expect(a.CreatedAt).NotTo(BeEmpty())
		Expect(a.ID).NotTo(Equal(b.ID))
	})

	It("produces identical steps for identical input", func() {
		a, err := stepper.BuildNatural(7)
		Expect(err).NotTo(HaveOccurred())
		b, err := stepper.BuildNatural(7)
		Expect(err).NotTo(HaveOccurred())

		Expect(a.Steps).To(Equal(b.Steps))
		Expect(a.Final).To(Equal(b.Final))
	})

	It("handles large operands iteratively", func() {
		t, err := stepper.BuildNatural(5000)
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Steps).To(HaveLen(5001))
		Expect(t.Final.Value).To(Equal(5000))
	})
})

var _ = Describe("BuildFraction", func() {
	It("builds both naturals, pairs them, and reduces", func() {
		t, err := stepper.BuildFraction(6, 9, true)
		Expect(err).NotTo(HaveOccurred())

		// 7 numerator steps, 10 denominator steps, pair, reduce.
		Expect(t.Steps).To(HaveLen(19))
		Expect(t.Steps[18].Rule).To(Equal(stepper.RuleReduce))
		Expect(t.Steps[18].Value).To(Equal("2/3"))

		Expect(t.Final.Kind).To(Equal(stepper.KindFraction))
		Expect(t.Final.Numerator).To(Equal(2))
		Expect(t.Final.Denominator).To(Equal(3))
	})

	It("labels numerator and denominator construction steps", func() {
		t, err := stepper.BuildFraction(1, 2, true)
		Expect(err).NotTo(HaveOccurred())

		Expect(t.Steps[0].Description).To(HavePrefix("numerator: "))
		Expect(t.Steps[2].Description).To(HavePrefix("denominator: "))
	})

	It("records the pairing step with both terms", func() {
		t, err := stepper.BuildFraction(1, 2, false)
		Expect(err).NotTo(HaveOccurred())

		var pair *stepper.Step
		for i := range t.Steps {
			if t.Steps[i].Rule == stepper.RulePair {
				pair = &t.Steps[i]
			}
		}
		Expect(pair).NotTo(BeNil())
		Expect(pair.Value).To(Equal("1/2"))
		Expect(pair.Term).To(Equal("s(0) / s(s(0))"))
	})

	It("skips reduction when the gcd is one", func() {
		t, err := stepper.BuildFraction(2, 3, true)
		Expect(err).NotTo(HaveOccurred())

		for _, s := range t.Steps {
			Expect(s.Rule).NotTo(Equal(stepper.RuleReduce))
		}
		Expect(t.Final.Numerator).To(Equal(2))
		Expect(t.Final.Denominator).To(Equal(3))
	})

	It("skips reduction when it is disabled", func() {
		t, err := stepper.BuildFraction(6, 9, false)
		Expect(err).NotTo(HaveOccurred())

		for _, s := range t.Steps {
			Expect(s.Rule).NotTo(Equal(stepper.RuleReduce))
		}
		Expect(t.Final.Numerator).To(Equal(6))
		Expect(t.Final.Denominator).To(Equal(9))
	})

	It("reports a zero numerator unreduced", func() {
		t, err := stepper.BuildFraction(0, 7, true)
		Expect(err).NotTo(HaveOccurred())

		for _, s := range t.Steps {
			Expect(s.Rule).NotTo(Equal(stepper.RuleReduce))
		}
		Expect(t.Final.Numerator).To(Equal(0))
		Expect(t.Final.Denominator).To(Equal(7))
	})

	It("rejects a zero denominator", func() {
		_, err := stepper.BuildFraction(5, 0, true)
		Expect(err).To(MatchError(peano.ErrInvalidInput))
	})

	It("rejects negative components", func() {
		_, err := stepper.BuildFraction(-1, 2, true)
		Expect(err).To(MatchError(peano.ErrInvalidInput))

		_, err = stepper.BuildFraction(1, -2, true)
		Expect(err).To(MatchError(peano.ErrInvalidInput))
	})
})
