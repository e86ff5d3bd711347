package nif

import (
	"fmt"

	"github.com/sarchlab/nocif/noc/messaging"
)

// CanEject tells whether the ejection buffer of a VC has room for one more
// flit. A fabric uses it as the credit for that VC.
func (c *Comp[P]) CanEject(subnet, node, vc int) bool {
	c.mustBeValidVC(subnet, node, vc)
	return c.ejectionBuffers[subnet][node][vc].CanPush()
}

// WriteOutBuffer accepts a flit that the fabric ejects at node. The fabric
// must respect the ejection buffer capacity; writing into a full buffer is a
// consistency violation.
func (c *Comp[P]) WriteOutBuffer(subnet, node int, flit *messaging.Flit[P]) {
	if flit == nil {
		fatal(&ConsistencyError{
			Kind:     NilFlit,
			Location: messaging.Location{Subnet: subnet, Node: node, VC: -1},
			Cycle:    c.clk,
		})
	}

	c.mustBeValidVC(subnet, node, flit.VC)

	loc := messaging.Location{Subnet: subnet, Node: node, VC: flit.VC}
	buf := c.ejectionBuffers[subnet][node][flit.VC]

	if !buf.CanPush() {
		fatal(&ConsistencyError{
			Kind:     EjectionOverflow,
			Location: loc,
			Cycle:    c.clk,
			Detail: fmt.Sprintf("%s, capacity %d",
				flit.ID, buf.Capacity()),
		})
	}

	buf.Push(flit)
	c.invokeHook(HookPosFlitEjected, flit, loc)
}

// Transfer2BoundaryBuffer moves at most one flit per VC of node from the
// ejection buffer to the boundary buffer. A VC is skipped when its ejection
// buffer is empty or its boundary buffer is full. Moved flits are also queued
// for GetEjectedFlit. It returns true if any flit moved.
func (c *Comp[P]) Transfer2BoundaryBuffer(subnet, node int) bool {
	c.mustBeValidNode(subnet, node)

	madeProgress := false

	for vc := 0; vc < c.cfg.NumVCs; vc++ {
		madeProgress = c.transferOne(subnet, node, vc) || madeProgress
	}

	return madeProgress
}

func (c *Comp[P]) transferOne(subnet, node, vc int) bool {
	ejection := c.ejectionBuffers[subnet][node][vc]
	boundary := c.boundaryBuffers[subnet][node][vc]

	if ejection.Size() == 0 || !boundary.CanPush() {
		return false
	}

	flit, _ := ejection.Pop()
	loc := messaging.Location{Subnet: subnet, Node: node, VC: vc}

	if flit.Head && flit.Dst != node {
		fatal(&ConsistencyError{
			Kind:     DestinationMismatch,
			Location: loc,
			Cycle:    c.clk,
			Detail: fmt.Sprintf("%s is destined to node %d",
				flit.ID, flit.Dst),
		})
	}

	boundary.Push(flit.Payload, flit.PacketID, flit.Tail)
	c.ejectedFlits[subnet][node].Push(flit)
	c.invokeHook(HookPosFlitTransferred, flit, loc)

	return true
}

// GetEjectedFlit returns the oldest flit that has moved into a boundary
// buffer of node and has not been retrieved yet. The second return value is
// false when there is none. The fabric uses it to reclaim flits.
func (c *Comp[P]) GetEjectedFlit(
	subnet, node int,
) (*messaging.Flit[P], bool) {
	c.mustBeValidNode(subnet, node)

	flit, ok := c.ejectedFlits[subnet][node].Pop()
	if ok {
		c.invokeHook(HookPosFlitReclaimed, flit,
			messaging.Location{Subnet: subnet, Node: node, VC: flit.VC})
	}

	return flit, ok
}
