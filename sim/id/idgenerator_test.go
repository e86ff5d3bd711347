package id_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/nocif/sim/id"
)

var _ = Describe("IDGenerator", func() {
	It("should generate sequential IDs", func() {
		g := id.NewIDGenerator()

		Expect(g.Generate()).To(Equal("1"))
		Expect(g.Generate()).To(Equal("2"))
		Expect(g.Generate()).To(Equal("3"))
	})

	It("should generate unique parallel IDs", func() {
		g := id.NewParallelIDGenerator()
		seen := make(map[string]bool)

		for i := 0; i < 1000; i++ {
			next := g.Generate()
			Expect(seen).NotTo(HaveKey(next))
			seen[next] = true
		}
	})

	It("should share one process-wide generator", func() {
		Expect(id.Default()).To(BeIdenticalTo(id.Default()))
		Expect(id.Generate()).NotTo(Equal(id.Generate()))
	})
})
