package peano_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/peanoworks/peano/pkg/peano"
)

var _ = Describe("Enrich", func() {
	var e *peano.Engine

	BeforeEach(func() {
		e = newEngine()
	})

	It("gives every step an integer reading", func() {
		e.Add(nat(2), nat(3))
		steps := peano.Enrich(e.Trace())

		Expect(steps[0].Meaning).To(Equal("2 + 3 = 5"))
	})

	It("gives every step a term-level reading", func() {
		e.Add(nat(1), peano.Zero)
		steps := peano.Enrich(e.Trace())

		Expect(steps[0].MeaningPeano).To(Equal("add: s(0) + 0 → s(0)"))
	})

	It("explains steps in natural language", func() {
		e.Successor(nat(1))
		steps := peano.Enrich(e.Trace())

		Expect(steps[0].Explanation).To(Equal("Successor of s(0) is s(s(0))."))
	})

	It("marks clamped subtraction in the integer reading", func() {
		e.Subtract(peano.Zero, nat(2))
		steps := peano.Enrich(e.Trace())

		Expect(steps[0].Meaning).To(Equal("0 - 2 = 0 (clamped)"))
	})

	It("renders comparisons with their boolean result", func() {
		e.LessThan(nat(2), nat(5))
		steps := peano.Enrich(e.Trace())

		Expect(steps[0].Meaning).To(Equal("2 < 5 = true"))
		Expect(steps[0].Explanation).To(Equal("Check s(s(0)) < s(s(s(s(s(0))))) → true."))
	})

	It("describes gcd via the Euclidean method", func() {
		e.Gcd(nat(6), nat(9))
		steps := peano.Enrich(e.Trace())

		Expect(steps[0].Meaning).To(Equal("gcd(6, 9) = 3"))
		Expect(steps[0].Explanation).To(HaveSuffix("via Euclidean method → s(s(s(0)))."))
	})

	It("labels repeated-subtraction rounds as steps", func() {
		_, err := e.Div(nat(6), nat(3))
		Expect(err).NotTo(HaveOccurred())

		steps := peano.Enrich(e.Trace())
		var stepMeanings int
		for _, s := range steps {
			if s.Op == "div_step" {
				Expect(s.Meaning).To(Equal("step"))
				stepMeanings++
			}
		}
		Expect(stepMeanings).To(Equal(3))
	})

	It("extracts integer args and results from terms", func() {
		e.Add(nat(2), nat(3))
		steps := peano.Enrich(e.Trace())

		Expect(steps[0].ArgsInt).To(HaveLen(2))
		Expect(*steps[0].ArgsInt[0]).To(Equal(2))
		Expect(*steps[0].ArgsInt[1]).To(Equal(3))
		Expect(*steps[0].ResultInt).To(Equal(5))
	})

	It("leaves boolean results without an integer value", func() {
		e.Equal(nat(1), nat(1))
		steps := peano.Enrich(e.Trace())

		Expect(steps[0].ResultInt).To(BeNil())
	})
})

var _ = Describe("FilterDisplay", func() {
	var e *peano.Engine

	BeforeEach(func() {
		e = newEngine()
	})

	It("hides successor and predecessor bookkeeping by default", func() {
		e.Add(nat(2), nat(3))
		steps := peano.FilterDisplay(peano.Enrich(e.Trace()), 10, false)

		for _, s := range steps {
			Expect(s.Op).NotTo(Equal("predecessor"))
			Expect(s.Op).NotTo(Equal("successor"))
		}
	})

	It("includes bookkeeping when showInternal is set", func() {
		e.Add(nat(2), nat(3))
		steps := peano.FilterDisplay(peano.Enrich(e.Trace()), 10, true)

		var internal int
		for _, s := range steps {
			if s.Op == "predecessor" {
				internal++
			}
		}
		Expect(internal).To(Equal(3))
	})

	It("drops steps below the depth limit", func() {
		e.Add(nat(2), nat(12))
		steps := peano.FilterDisplay(peano.Enrich(e.Trace()), 4, true)

		for _, s := range steps {
			Expect(s.Depth).To(BeNumerically("<=", 4))
		}
	})

	It("keeps everything within the limit", func() {
		e.Add(nat(1), nat(1))
		all := peano.Enrich(e.Trace())
		steps := peano.FilterDisplay(all, 100, true)

		Expect(steps).To(HaveLen(len(all)))
	})
})
