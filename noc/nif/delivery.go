package nif

import (
	"golang.org/x/exp/slices"

	"github.com/sarchlab/nocif/noc/messaging"
)

// IsEmpty tells whether no VC of the node holds a complete packet.
func (c *Comp[P]) IsEmpty(node, subnet int) bool {
	c.mustBeValidNode(subnet, node)

	return !slices.ContainsFunc(c.boundaryBuffers[subnet][node],
		func(s *boundarySlot[P]) bool { return !s.IsEmpty() })
}

// Top returns the packet that the next Pop at the node would deliver. It
// does not change the round-robin order.
func (c *Comp[P]) Top(node, subnet int) (messaging.Packet[P], bool) {
	c.mustBeValidNode(subnet, node)

	slots := c.boundaryBuffers[subnet][node]

	vc, found := c.arbiters[subnet][node].Find(c.readyVC(slots))
	if !found {
		return messaging.Packet[P]{}, false
	}

	return slots[vc].Top(), true
}

// Pop removes one complete packet from the first ready VC, starting from the
// round-robin cursor, and moves the cursor past that VC. When no packet is
// ready it does nothing.
func (c *Comp[P]) Pop(node, subnet int) (messaging.Packet[P], bool) {
	c.mustBeValidNode(subnet, node)

	slots := c.boundaryBuffers[subnet][node]

	vc, found := c.arbiters[subnet][node].Arbitrate(c.readyVC(slots))
	if !found {
		return messaging.Packet[P]{}, false
	}

	pkt := slots[vc].Pop()
	c.invokeHook(HookPosPacketDelivered, pkt,
		messaging.Location{Subnet: subnet, Node: node, VC: vc})

	return pkt, true
}

func (c *Comp[P]) readyVC(slots []*boundarySlot[P]) func(int) bool {
	return func(vc int) bool {
		return !slots[vc].IsEmpty()
	}
}
