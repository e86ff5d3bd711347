package messaging

import (
	"github.com/sarchlab/nocif/sim/hooking"
)

// A TrafficCounter counts the items, and the flits they consist of, that pass
// a hook position.
type TrafficCounter struct {
	Pos   *hooking.HookPos
	Items uint64
	Flits uint64
}

// NewTrafficCounter creates a counter for the given position.
func NewTrafficCounter(pos *hooking.HookPos) *TrafficCounter {
	return &TrafficCounter{Pos: pos}
}

// Func adds the traffic to the counter
func (c *TrafficCounter) Func(ctx hooking.HookCtx) {
	if ctx.Pos != c.Pos {
		return
	}

	c.Items++

	if counted, ok := ctx.Item.(interface{ FlitCount() int }); ok {
		c.Flits += uint64(counted.FlitCount())
	}
}
