// Package messaging defines the flits and packets exchanged between a network
// fabric and the network interfaces at its edge.
package messaging

import (
	"fmt"

	"github.com/sarchlab/nocif/sim/id"
)

// Flit is the smallest trasferring unit on a network. The payload P is opaque
// to the network interface.
type Flit[P any] struct {
	ID       string
	PacketID string

	Subnet int
	Src    int
	Dst    int
	VC     int
	Type   PacketType

	Head bool
	Tail bool

	SeqID           int
	NumFlitInPacket int

	Payload P

	// Fabric bookkeeping. The network interface never reads these fields.
	InjectionCycle uint64
	EjectionCycle  uint64
	Hops           int
}

// FlitCount returns 1. It lets traffic counters treat flits and packets
// uniformly.
func (f *Flit[P]) FlitCount() int {
	return 1
}

// TraceID identifies the flit in diagnostic traces.
func (f *Flit[P]) TraceID() string {
	return f.ID
}

func (f *Flit[P]) String() string {
	return fmt.Sprintf("flit %s (pkt %s, %d/%d, vc %d, %d->%d)",
		f.ID, f.PacketID, f.SeqID, f.NumFlitInPacket, f.VC, f.Src, f.Dst)
}

// FlitBuilder can build flits
type FlitBuilder[P any] struct {
	packetID            string
	subnet, src, dst    int
	vc                  int
	packetType          PacketType
	seqID, numFlitInPkt int
	payload             P
}

// MakeFlitBuilder creates a FlitBuilder that builds single-flit packets by
// default.
func MakeFlitBuilder[P any]() FlitBuilder[P] {
	return FlitBuilder[P]{
		numFlitInPkt: 1,
		packetType:   PacketTypeAny,
	}
}

// WithPacketID sets the ID of the packet that the flit belongs to.
func (b FlitBuilder[P]) WithPacketID(packetID string) FlitBuilder[P] {
	b.packetID = packetID
	return b
}

// WithSubnet sets the subnet that carries the flit.
func (b FlitBuilder[P]) WithSubnet(subnet int) FlitBuilder[P] {
	b.subnet = subnet
	return b
}

// WithSrc sets the source node of the flit.
func (b FlitBuilder[P]) WithSrc(src int) FlitBuilder[P] {
	b.src = src
	return b
}

// WithDst sets the destination node of the flit.
func (b FlitBuilder[P]) WithDst(dst int) FlitBuilder[P] {
	b.dst = dst
	return b
}

// WithVC sets the virtual channel of the flit.
func (b FlitBuilder[P]) WithVC(vc int) FlitBuilder[P] {
	b.vc = vc
	return b
}

// WithType sets the type of the packet that the flit belongs to.
func (b FlitBuilder[P]) WithType(t PacketType) FlitBuilder[P] {
	b.packetType = t
	return b
}

// WithSeqID sets the position of the flit in its packet.
func (b FlitBuilder[P]) WithSeqID(i int) FlitBuilder[P] {
	b.seqID = i
	return b
}

// WithNumFlitInPacket sets the number of flits of the packet.
func (b FlitBuilder[P]) WithNumFlitInPacket(n int) FlitBuilder[P] {
	b.numFlitInPkt = n
	return b
}

// WithPayload sets the payload carried by the flit.
func (b FlitBuilder[P]) WithPayload(payload P) FlitBuilder[P] {
	b.payload = payload
	return b
}

// Build creates a new flit. The head and tail flags follow from the sequence
// ID and the number of flits in the packet.
func (b FlitBuilder[P]) Build() *Flit[P] {
	if b.numFlitInPkt <= 0 {
		panic("a packet must have at least one flit")
	}

	if b.seqID < 0 || b.seqID >= b.numFlitInPkt {
		panic(fmt.Sprintf("seq id %d out of range [0, %d)",
			b.seqID, b.numFlitInPkt))
	}

	packetID := b.packetID
	if packetID == "" {
		packetID = id.Generate()
	}

	f := &Flit[P]{
		ID:              fmt.Sprintf("flit-%d-pkt-%s", b.seqID, packetID),
		PacketID:        packetID,
		Subnet:          b.subnet,
		Src:             b.src,
		Dst:             b.dst,
		VC:              b.vc,
		Type:            b.packetType,
		Head:            b.seqID == 0,
		Tail:            b.seqID == b.numFlitInPkt-1,
		SeqID:           b.seqID,
		NumFlitInPacket: b.numFlitInPkt,
		Payload:         b.payload,
	}

	return f
}
