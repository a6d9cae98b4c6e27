package trace_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/peanoworks/peano/pkg/trace"
)

var _ = Describe("Recorder", func() {
	var rec *trace.Recorder

	BeforeEach(func() {
		rec = trace.NewRecorder()
		rec.Start()
	})

	Describe("Enter and Exit", func() {
		It("makes the first node the root", func() {
			n := rec.Enter("add", "s(0)", "0")
			rec.Exit(n, "s(0)")

			Expect(rec.Root()).To(Equal(n))
		})

		It("nests nodes entered while another is open", func() {
			outer := rec.Enter("add", "s(0)", "s(0)")
			inner := rec.Enter("predecessor", "s(0)")
			rec.Exit(inner, "0")
			rec.Exit(outer, "s(s(0))")

			Expect(rec.Root().Children).To(HaveLen(1))
			Expect(rec.Root().Children[0]).To(Equal(inner))
		})

		It("makes siblings of nodes entered after a sibling closed", func() {
			outer := rec.Enter("multiply", "s(0)", "s(0)")
			first := rec.Enter("predecessor", "s(0)")
			rec.Exit(first, "0")
			second := rec.Enter("add", "0", "s(0)")
			rec.Exit(second, "s(0)")
			rec.Exit(outer, "s(0)")

			Expect(outer.Children).To(HaveLen(2))
			Expect(outer.Children[0].Op).To(Equal("predecessor"))
			Expect(outer.Children[1].Op).To(Equal("add"))
		})

		It("copies args so callers cannot mutate recorded nodes", func() {
			args := []string{"s(0)", "0"}
			n := rec.Enter("add", args...)
			args[0] = "mutated"

			Expect(n.Args[0]).To(Equal("s(0)"))
		})

		It("records the result on exit", func() {
			n := rec.Enter("successor", "0")
			rec.Exit(n, "s(0)")

			Expect(n.Result).To(Equal("s(0)"))
		})

		It("ignores out-of-order exits without corrupting the stack", func() {
			outer := rec.Enter("div", "s(s(0))", "s(0)")
			inner := rec.Enter("div_step", "s(s(0))", "s(0)")

			// Exit the outer node first; it is not on top, so only its
			// result is set.
			rec.Exit(outer, "s(s(0))")
			rec.Exit(inner, "s(s(0))")

			sibling := rec.Enter("less_than", "0", "s(0)")
			rec.Exit(sibling, "true")

			Expect(outer.Children).To(HaveLen(2))
			Expect(outer.Children[1]).To(Equal(sibling))
		})
	})

	Describe("Steps", func() {
		It("counts one step per Enter", func() {
			a := rec.Enter("add", "0", "0")
			b := rec.Enter("is_zero", "0")
			rec.Exit(b, "true")
			rec.Exit(a, "0")

			Expect(rec.Steps()).To(Equal(2))
		})
	})

	Describe("Start", func() {
		It("resets steps, root, and the negative flag", func() {
			n := rec.Enter("subtract", "0", "s(0)")
			rec.MarkNegative()
			rec.Exit(n, "0")

			rec.Start()

			Expect(rec.Steps()).To(Equal(0))
			Expect(rec.Root()).To(BeNil())
			Expect(rec.NegativeEncountered()).To(BeFalse())
		})
	})

	Describe("MarkNegative", func() {
		It("is sticky until the next Start", func() {
			rec.MarkNegative()
			n := rec.Enter("subtract", "0", "s(0)")
			rec.Exit(n, "0")

			Expect(rec.NegativeEncountered()).To(BeTrue())
		})
	})

	Describe("Flatten", func() {
		It("returns nil for an empty recorder", func() {
			Expect(rec.Flatten()).To(BeNil())
		})

		It("walks the tree in pre-order with depth annotations", func() {
			outer := rec.Enter("add", "s(0)", "s(0)")
			inner := rec.Enter("predecessor", "s(0)")
			rec.Exit(inner, "0")
			base := rec.Enter("add", "s(0)", "0")
			rec.Exit(base, "s(0)")
			rec.Exit(outer, "s(s(0))")

			flat := rec.Flatten()
			Expect(flat).To(HaveLen(3))

			Expect(flat[0].Op).To(Equal("add"))
			Expect(flat[0].Depth).To(Equal(0))
			Expect(flat[1].Op).To(Equal("predecessor"))
			Expect(flat[1].Depth).To(Equal(1))
			Expect(flat[2].Op).To(Equal("add"))
			Expect(flat[2].Depth).To(Equal(1))
		})

		It("carries op, args, result, axiom, and definition", func() {
			n := rec.Enter("equal", "0", "0")
			n.Axiom = "A1"
			rec.Exit(n, "true")

			flat := rec.Flatten()
			Expect(flat).To(HaveLen(1))
			Expect(flat[0].Args).To(Equal([]string{"0", "0"}))
			Expect(flat[0].Result).To(Equal("true"))
			Expect(flat[0].Axiom).To(Equal("A1"))
		})
	})
})
