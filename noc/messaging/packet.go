package messaging

import (
	"fmt"
	"strings"

	"github.com/sarchlab/nocif/sim/id"
)

// PacketType classifies packets. Each type travels on its own range of
// virtual channels.
type PacketType int

// The packet types known to the fabric.
const (
	PacketTypeRead PacketType = iota
	PacketTypeWrite
	PacketTypeReadReply
	PacketTypeWriteReply
	PacketTypeAny
)

var packetTypeNames = []string{
	"read", "write", "read_reply", "write_reply", "any",
}

func (t PacketType) String() string {
	if t < 0 || int(t) >= len(packetTypeNames) {
		return fmt.Sprintf("PacketType(%d)", int(t))
	}

	return packetTypeNames[t]
}

// ParsePacketType converts a name such as "read_reply" back to a PacketType.
func ParsePacketType(s string) (PacketType, error) {
	for i, name := range packetTypeNames {
		if strings.EqualFold(s, name) {
			return PacketType(i), nil
		}
	}

	return 0, fmt.Errorf("unknown packet type %q", s)
}

// PacketRequest describes a packet that a consumer asks the fabric to inject.
type PacketRequest[P any] struct {
	Payload    P
	Subnet     int
	Addr       uint64
	Bytes      int
	HeaderSize int
	Type       PacketType
	Class      int
	Src        int
	Dst        int
	Time       uint64
}

// FlitsForBytes returns the number of flits needed to carry n bytes. Zero
// bytes need zero flits.
func FlitsForBytes(n, flitSize int) int {
	if flitSize <= 0 {
		panic("flit size must be positive")
	}

	if n <= 0 {
		return 0
	}

	return (n + flitSize - 1) / flitSize
}

// NumFlits returns the number of flits the request occupies on the network.
// Every packet has at least one flit.
func (r PacketRequest[P]) NumFlits(flitSize int) int {
	n := FlitsForBytes(r.Bytes+r.HeaderSize, flitSize)
	if n == 0 {
		return 1
	}

	return n
}

// Flitize splits the request into the flits of one packet travelling on vc.
// Every flit carries the request payload.
func Flitize[P any](
	r PacketRequest[P],
	flitSize int,
	vc int,
) []*Flit[P] {
	packetID := id.Generate()
	n := r.NumFlits(flitSize)
	flits := make([]*Flit[P], n)

	for i := 0; i < n; i++ {
		flits[i] = MakeFlitBuilder[P]().
			WithPacketID(packetID).
			WithSubnet(r.Subnet).
			WithSrc(r.Src).
			WithDst(r.Dst).
			WithVC(vc).
			WithType(r.Type).
			WithSeqID(i).
			WithNumFlitInPacket(n).
			WithPayload(r.Payload).
			Build()
		flits[i].InjectionCycle = r.Time
	}

	return flits
}

// Packet is a reassembled packet. Fragments hold the payload of each flit in
// arrival order.
type Packet[P any] struct {
	ID        string
	Fragments []P
}

// Payload returns the payload carried by the tail flit.
func (p Packet[P]) Payload() P {
	if len(p.Fragments) == 0 {
		var zero P
		return zero
	}

	return p.Fragments[len(p.Fragments)-1]
}

// FlitCount returns the number of flits the packet was assembled from.
func (p Packet[P]) FlitCount() int {
	return len(p.Fragments)
}

// TraceID identifies the packet in diagnostic traces.
func (p Packet[P]) TraceID() string {
	return "pkt-" + p.ID
}
