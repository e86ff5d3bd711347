package nif

import (
	"github.com/sarchlab/nocif/noc/messaging"
)

// boundarySlot holds the payloads that left the ejection buffer of one VC but
// have not been consumed. Complete packets queue in order. The fragments of
// the packet that still waits for its tail flit are kept aside, so the
// consumer can never observe a partial packet.
type boundarySlot[P any] struct {
	name     string
	loc      messaging.Location
	capacity int
	now      func() uint64

	packets    []messaging.Packet[P]
	assembling []P
	size       int
}

func newBoundarySlot[P any](
	name string,
	loc messaging.Location,
	capacity int,
	now func() uint64,
) *boundarySlot[P] {
	return &boundarySlot[P]{
		name:     name,
		loc:      loc,
		capacity: capacity,
		now:      now,
	}
}

// Name returns the name of the slot.
func (s *boundarySlot[P]) Name() string {
	return s.name
}

// Size returns the number of buffered fragments, complete or not.
func (s *boundarySlot[P]) Size() int {
	return s.size
}

// Capacity returns the maximum number of buffered fragments.
func (s *boundarySlot[P]) Capacity() int {
	return s.capacity
}

// CanPush tells whether one more fragment fits.
func (s *boundarySlot[P]) CanPush() bool {
	return s.size < s.capacity
}

// NumPackets returns the number of complete packets.
func (s *boundarySlot[P]) NumPackets() int {
	return len(s.packets)
}

// IsEmpty tells whether there is no complete packet to consume.
func (s *boundarySlot[P]) IsEmpty() bool {
	return len(s.packets) == 0
}

// Push appends the payload of one flit. A tail fragment completes the packet
// that is being assembled.
func (s *boundarySlot[P]) Push(payload P, packetID string, isTail bool) {
	if !s.CanPush() {
		fatal(&ConsistencyError{
			Kind:     BoundaryOverflow,
			Location: s.loc,
			Cycle:    s.now(),
		})
	}

	s.assembling = append(s.assembling, payload)
	s.size++

	if !isTail {
		return
	}

	s.packets = append(s.packets, messaging.Packet[P]{
		ID:        packetID,
		Fragments: s.assembling,
	})
	s.assembling = nil
}

// Top returns the oldest complete packet without removing it.
func (s *boundarySlot[P]) Top() messaging.Packet[P] {
	s.mustNotBeEmpty("top")

	return s.packets[0]
}

// Pop removes and returns the oldest complete packet.
func (s *boundarySlot[P]) Pop() messaging.Packet[P] {
	s.mustNotBeEmpty("pop")

	pkt := s.packets[0]
	s.packets[0] = messaging.Packet[P]{}
	s.packets = s.packets[1:]
	s.size -= len(pkt.Fragments)

	return pkt
}

func (s *boundarySlot[P]) mustNotBeEmpty(op string) {
	if s.IsEmpty() {
		fatal(&ConsistencyError{
			Kind:     EmptyBoundaryAccess,
			Location: s.loc,
			Cycle:    s.now(),
			Detail:   op,
		})
	}
}
