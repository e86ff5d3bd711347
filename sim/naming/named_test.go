package naming

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Naming", func() {
	It("should build indexed names", func() {
		Expect(Indexed("NIF", "Subnet", 0)).To(Equal("NIF.Subnet[0]"))
		Expect(Indexed("", "Slot", 1, 2)).To(Equal("Slot[1][2]"))
	})

	DescribeTable("validation",
		func(name string, valid bool) {
			if valid {
				Expect(func() { NameMustBeValid(name) }).NotTo(Panic())
			} else {
				Expect(func() { NameMustBeValid(name) }).To(Panic())
			}
		},
		Entry("simple", "NIF", true),
		Entry("hierarchical", "NIF.Subnet[0].Node[3]", true),
		Entry("multi index", "NIF.Buf[1][2]", true),
		Entry("empty", "", false),
		Entry("trailing dot", "NIF.", false),
		Entry("lower case", "NIF.buf", false),
		Entry("non integer index", "NIF.Buf[a]", false),
		Entry("unmatched bracket", "NIF.Buf[1", false),
	)
})
