package nif

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/nocif/noc/messaging"
)

var _ = Describe("Boundary Slot", func() {
	var (
		cycle uint64
		slot  *boundarySlot[int]
	)

	BeforeEach(func() {
		cycle = 10
		slot = newBoundarySlot[int]("Slot",
			messaging.Location{Subnet: 0, Node: 1, VC: 2}, 3,
			func() uint64 { return cycle })
	})

	It("should start empty", func() {
		Expect(slot.IsEmpty()).To(BeTrue())
		Expect(slot.Size()).To(Equal(0))
		Expect(slot.Capacity()).To(Equal(3))
		Expect(slot.CanPush()).To(BeTrue())
	})

	It("should hide a packet until its tail arrives", func() {
		slot.Push(1, "p", false)
		slot.Push(2, "p", false)

		Expect(slot.IsEmpty()).To(BeTrue())
		Expect(slot.Size()).To(Equal(2))

		slot.Push(3, "p", true)

		Expect(slot.IsEmpty()).To(BeFalse())
		Expect(slot.NumPackets()).To(Equal(1))
		Expect(slot.Top().Fragments).To(Equal([]int{1, 2, 3}))
	})

	It("should count partial fragments against the capacity", func() {
		slot.Push(1, "p", true)
		slot.Push(2, "q", false)
		slot.Push(3, "q", false)

		Expect(slot.CanPush()).To(BeFalse())

		pkt := slot.Pop()

		Expect(pkt.ID).To(Equal("p"))
		Expect(slot.Size()).To(Equal(2))
		Expect(slot.CanPush()).To(BeTrue())
	})

	It("should panic when pushing into a full slot", func() {
		slot.Push(1, "p", true)
		slot.Push(2, "q", true)
		slot.Push(3, "r", true)

		Expect(func() { slot.Push(4, "s", true) }).To(PanicWith(And(
			BeAssignableToTypeOf(&ConsistencyError{}),
			HaveField("Kind", BoundaryOverflow),
			HaveField("Cycle", uint64(10)),
		)))
	})

	It("should panic when popping an empty slot", func() {
		slot.Push(1, "p", false)

		Expect(func() { slot.Pop() }).
			To(PanicWith(violation(EmptyBoundaryAccess)))
		Expect(func() { slot.Top() }).
			To(PanicWith(violation(EmptyBoundaryAccess)))
	})
})

var _ = Describe("ConsistencyError", func() {
	It("should describe where it happened", func() {
		err := &ConsistencyError{
			Kind:     DestinationMismatch,
			Location: messaging.Location{Subnet: 1, Node: 2, VC: 3},
			Cycle:    42,
			Detail:   "flit 7",
		}

		Expect(err.Error()).To(ContainSubstring("cycle 42"))
		Expect(err.Error()).To(ContainSubstring("destination mismatch"))
		Expect(err.Error()).To(HaveSuffix("flit 7"))
	})
})
