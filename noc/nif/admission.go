package nif

import (
	"github.com/sarchlab/nocif/noc/messaging"
)

// IsFull tells whether a packet of size bytes, plus the header, would
// overflow the ingress queue of the node. An empty packet still takes one
// flit. It has no side effect. Occupancy
// changes every cycle, so callers check again before each injection.
func (c *Comp[P]) IsFull(node, subnet, size int) bool {
	c.mustBeValidNode(subnet, node)

	needed := messaging.FlitsForBytes(size+c.cfg.HeaderSize, c.cfg.FlitSize)
	if needed == 0 {
		needed = 1
	}
	expected := c.trafficManager.InputQueueLen(subnet, node) + needed

	return expected > c.cfg.InputBufferSize
}

// Push hands a packet to the fabric for injection. Push does not check
// capacity. Call IsFull first, or use TryPush.
func (c *Comp[P]) Push(
	payload P,
	subnet int,
	addr uint64,
	bytes int,
	packetType messaging.PacketType,
	src, dst int,
) {
	c.mustBeValidNode(subnet, src)
	c.mustBeValidNode(subnet, dst)

	req := messaging.PacketRequest[P]{
		Payload:    payload,
		Subnet:     subnet,
		Addr:       addr,
		Bytes:      bytes,
		HeaderSize: c.cfg.HeaderSize,
		Type:       packetType,
		Src:        src,
		Dst:        dst,
		Time:       c.clk,
	}

	c.trafficManager.GeneratePacket(req)
	c.invokeHook(HookPosPacketInjected, req,
		messaging.Location{Subnet: subnet, Node: src, VC: -1})
}

// TryPush pushes the packet only if the ingress queue of src can take it. It
// returns whether the packet was pushed.
func (c *Comp[P]) TryPush(
	payload P,
	subnet int,
	addr uint64,
	bytes int,
	packetType messaging.PacketType,
	src, dst int,
) bool {
	if c.IsFull(src, subnet, bytes) {
		return false
	}

	c.Push(payload, subnet, addr, bytes, packetType, src, dst)

	return true
}
