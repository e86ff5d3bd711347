package acceptance

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/nocif/noc/config"
)

var _ = Describe("Test", func() {
	DescribeTable("should deliver every message",
		func(cfg config.Config) {
			t := NewTest("Acceptance", cfg)
			t.GenerateMsgs(300)

			t.Run(100000)

			Expect(t.Missing()).To(BeEmpty())
			Expect(t.MustHaveReceivedAllMsgs).NotTo(Panic())
		},
		Entry("two nodes, one VC", config.Config{
			Subnets:            1,
			Nodes:              2,
			FlitSize:           8,
			NumVCs:             1,
			EjectionBufferSize: 1,
			BoundaryBufferSize: 4,
		}),
		Entry("many nodes and VCs", config.Config{
			Subnets:            2,
			Nodes:              8,
			FlitSize:           16,
			NumVCs:             4,
			EjectionBufferSize: 2,
			BoundaryBufferSize: 6,
			HeaderSize:         4,
			FabricLatency:      5,
		}),
	)

	It("should report messages that are not delivered", func() {
		t := NewTest("Acceptance", config.Config{
			Subnets:            1,
			Nodes:              4,
			FlitSize:           8,
			NumVCs:             2,
			EjectionBufferSize: 2,
			BoundaryBufferSize: 4,
			FabricLatency:      50,
		})
		t.GenerateMsgs(10)

		t.Run(1)

		Expect(t.Missing()).To(HaveLen(10))
		Expect(t.MustHaveReceivedAllMsgs).To(Panic())
	})

	It("should report bandwidth", func() {
		t := NewTest("Acceptance", config.Config{
			Subnets:            1,
			Nodes:              2,
			FlitSize:           8,
			NumVCs:             1,
			EjectionBufferSize: 1,
			BoundaryBufferSize: 4,
		})
		t.GenerateMsgs(10)
		t.Run(1000)

		buf := &bytes.Buffer{}
		t.ReportBandwidthAchieved(buf)

		Expect(buf.String()).To(ContainSubstring("Acceptance.Agent[0]"))
	})
})
