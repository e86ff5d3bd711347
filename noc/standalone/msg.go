// Package standalone provides a loopback fabric and a random traffic agent so
// that a network interface can run without an external network simulator.
package standalone

import (
	"fmt"

	"github.com/sarchlab/nocif/noc/messaging"
	"github.com/sarchlab/nocif/sim/id"
)

// TrafficMsg is the payload that standalone agents send. It has a byte size,
// but we do not care about the information it carries.
type TrafficMsg struct {
	ID        string
	Subnet    int
	Src       int
	Dst       int
	Bytes     int
	Type      messaging.PacketType
	SendCycle uint64
}

// NewTrafficMsg creates a new traffic message with a fresh ID.
func NewTrafficMsg(subnet, src, dst, bytes int) *TrafficMsg {
	return &TrafficMsg{
		ID:     id.Generate(),
		Subnet: subnet,
		Src:    src,
		Dst:    dst,
		Bytes:  bytes,
		Type:   messaging.PacketTypeAny,
	}
}

// TraceID identifies the message in diagnostic traces.
func (m *TrafficMsg) TraceID() string {
	return "msg-" + m.ID
}

func (m *TrafficMsg) String() string {
	return fmt.Sprintf("%s %d->%d (%d bytes, subnet %d)",
		m.ID, m.Src, m.Dst, m.Bytes, m.Subnet)
}
