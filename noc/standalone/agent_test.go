package standalone

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/nocif/noc/messaging"
)

var _ = Describe("Agent", func() {
	It("should compute the largest admissible packet", func() {
		cfg := fabricConfig()
		cfg.HeaderSize = 4

		Expect(MaxPacketBytes(cfg)).To(Equal(8*16 - 4))

		cfg.InputBufferSize = 0
		Expect(MaxPacketBytes(cfg)).To(Equal(8*16 - 4))

		cfg.BoundaryBufferSize = 2
		Expect(MaxPacketBytes(cfg)).To(Equal(2*16 - 4))
	})

	It("should reject packet sizes that cannot be admitted", func() {
		fabric := MakeBuilder[*TrafficMsg]().
			WithConfig(fabricConfig()).
			Build("Fabric")

		Expect(func() {
			MakeAgentBuilder().
				WithInterface(fabric.NIF()).
				WithMaxBytes(1 << 20).
				Build("Agent")
		}).To(Panic())
	})

	It("should send an enqueued message", func() {
		fabric := MakeBuilder[*TrafficMsg]().
			WithConfig(fabricConfig()).
			Build("Fabric")
		ni := fabric.NIF()

		src := MakeAgentBuilder().
			WithInterface(ni).
			WithNode(0).
			WithNumPackets(0).
			Build("Src")
		dst := MakeAgentBuilder().
			WithInterface(ni).
			WithNode(2).
			WithNumPackets(0).
			Build("Dst")

		var received []*TrafficMsg
		dst.OnReceive = func(m *TrafficMsg) { received = append(received, m) }

		msg := NewTrafficMsg(0, 0, 2, 20)
		Expect(src.Enqueue(msg)).To(BeTrue())

		for i := 0; i < 50 && len(received) == 0; i++ {
			ni.Run()
			src.Tick()
			dst.Tick()
		}

		Expect(received).To(ConsistOf(msg))
		Expect(src.NumSent).To(Equal(uint64(1)))
		Expect(dst.BytesReceived).To(Equal(uint64(20)))
	})

	It("should deliver all random traffic", func() {
		cfg := fabricConfig()
		cfg.Subnets = 2
		fabric := MakeBuilder[*TrafficMsg]().WithConfig(cfg).Build("Fabric")
		ni := fabric.NIF()

		var agents []*Agent
		for i := 0; i < cfg.Nodes; i++ {
			agents = append(agents, MakeAgentBuilder().
				WithInterface(ni).
				WithNode(i).
				WithInjectionRate(0.5).
				WithPacketType(messaging.PacketTypeWrite).
				WithNumPackets(20).
				Build(fmt.Sprintf("Agent[%d]", i)))
		}

		sent := func() (n uint64) {
			for _, a := range agents {
				n += a.NumSent
			}
			return n
		}
		received := func() (n uint64) {
			for _, a := range agents {
				n += a.NumReceived
			}
			return n
		}

		for cycle := 0; cycle < 5000; cycle++ {
			ni.Run()
			for _, a := range agents {
				a.Tick()
			}

			if sent() == 80 && received() == 80 {
				break
			}
		}

		Expect(sent()).To(Equal(uint64(80)))
		Expect(received()).To(Equal(uint64(80)))
		for _, a := range agents {
			Expect(a.Done()).To(BeTrue())
		}
	})
})

