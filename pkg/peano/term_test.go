package peano_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/peanoworks/peano/pkg/peano"
)

var _ = Describe("Nat", func() {
	Describe("New", func() {
		It("accepts zero", func() {
			n, err := peano.New(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(peano.Zero))
		})

		It("accepts positive integers", func() {
			n, err := peano.New(42)
			Expect(err).NotTo(HaveOccurred())
			Expect(n.Int()).To(Equal(42))
		})

		It("rejects negative integers", func() {
			_, err := peano.New(-1)
			Expect(err).To(MatchError(peano.ErrInvalidInput))
		})
	})

	Describe("Term", func() {
		It("renders zero as 0", func() {
			Expect(peano.Zero.Term()).To(Equal("0"))
		})

		It("renders positive naturals as nested successors", func() {
			n, _ := peano.New(3)
			Expect(n.Term()).To(Equal("s(s(s(0)))"))
		})

		It("renders large naturals without recursion", func() {
			n, _ := peano.New(1000)
			term := n.Term()
			Expect(term).To(HavePrefix("s(s("))
			Expect(term).To(HaveLen(1000*3 + 1))
		})
	})

	Describe("Succ", func() {
		It("increments without recording", func() {
			Expect(peano.Zero.Succ().Int()).To(Equal(1))
		})
	})

	Describe("ParseTerm", func() {
		It("parses zero", func() {
			n, err := peano.ParseTerm("0")
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(peano.Zero))
		})

		It("parses nested successor terms", func() {
			n, err := peano.ParseTerm("s(s(s(0)))")
			Expect(err).NotTo(HaveOccurred())
			Expect(n.Int()).To(Equal(3))
		})

		It("tolerates whitespace", func() {
			n, err := peano.ParseTerm("s( s( 0 ) )")
			Expect(err).NotTo(HaveOccurred())
			Expect(n.Int()).To(Equal(2))
		})

		It("round-trips with Term", func() {
			for _, v := range []int{0, 1, 5, 17} {
				n, _ := peano.New(v)
				parsed, err := peano.ParseTerm(n.Term())
				Expect(err).NotTo(HaveOccurred())
				Expect(parsed).To(Equal(n))
			}
		})

		It("rejects malformed terms", func() {
			for _, term := range []string{"", "s(0", "s0)", "x", "ss(0)", "s()"} {
				_, err := peano.ParseTerm(term)
				Expect(err).To(MatchError(peano.ErrInvalidInput), "term %q", term)
			}
		})
	})

	Describe("IsTerm", func() {
		It("recognizes canonical terms", func() {
			Expect(peano.IsTerm("0")).To(BeTrue())
			Expect(peano.IsTerm("s(0)")).To(BeTrue())
			Expect(peano.IsTerm("s( s(0) )")).To(BeTrue())
		})

		It("rejects booleans and error markers", func() {
			Expect(peano.IsTerm("true")).To(BeFalse())
			Expect(peano.IsTerm("false")).To(BeFalse())
			Expect(peano.IsTerm("error")).To(BeFalse())
		})
	})
})
