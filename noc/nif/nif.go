// Package nif implements the network interface that sits between a
// cycle-accurate network fabric and the compute nodes it serves.
//
// Flits ejected by the fabric wait in a per virtual channel ejection buffer,
// move one flit per VC per cycle into a boundary buffer that reassembles
// packets, and are handed to the consumer one complete packet at a time by a
// round-robin arbiter over the VCs of a node. In the other direction, IsFull
// tells a consumer whether the fabric can take a packet and Push hands it
// over.
package nif

import (
	"io"
	"log"

	"github.com/sarchlab/nocif/noc/config"
	"github.com/sarchlab/nocif/noc/messaging"
	"github.com/sarchlab/nocif/noc/networking/arbitration"
	"github.com/sarchlab/nocif/sim/hooking"
	"github.com/sarchlab/nocif/sim/naming"
	"github.com/sarchlab/nocif/sim/queueing"
)

// Hook positions. The Item of the hook context is the flit or the packet and
// the Detail is its messaging.Location.
var (
	HookPosFlitEjected     = &hooking.HookPos{Name: "NIF Flit Ejected"}
	HookPosFlitTransferred = &hooking.HookPos{Name: "NIF Flit Transferred"}
	HookPosFlitReclaimed   = &hooking.HookPos{Name: "NIF Flit Reclaimed"}
	HookPosPacketDelivered = &hooking.HookPos{Name: "NIF Packet Delivered"}
	HookPosPacketInjected  = &hooking.HookPos{Name: "NIF Packet Injected"}
)

// Stats is a named statistic kept by the traffic manager.
type Stats interface {
	Name() string
	NumSamples() int
	Average() float64
}

// TrafficManager is the fabric side of the interface. It turns packet
// requests into flits, schedules their injection and advances the routers.
type TrafficManager[P any] interface {
	// Step advances the fabric by one cycle.
	Step()

	// InputQueueLen returns the number of flits waiting in the ingress queue
	// of a node.
	InputQueueLen(subnet, node int) int

	// GeneratePacket accepts a packet for flitization and injection.
	GeneratePacket(req messaging.PacketRequest[P])

	// Stats returns the statistic with the given name, or nil.
	Stats(name string) Stats

	UpdateStats()
	DisplayStats(w io.Writer)
}

// Buffer is the read-only view of a buffer inside the interface.
type Buffer interface {
	naming.Named
	Size() int
	Capacity() int
}

type flitBuffer[P any] = queueing.Buffer[*messaging.Flit[P]]

// Comp is the network interface. P is the payload type carried by flits.
type Comp[P any] struct {
	hooking.HookableBase
	naming.NamedBase

	cfg            config.Config
	trafficManager TrafficManager[P]
	clk            uint64

	// Indexed by [subnet][node][vc].
	ejectionBuffers [][][]flitBuffer[P]
	boundaryBuffers [][][]*boundarySlot[P]

	// Indexed by [subnet][node].
	ejectedFlits [][]flitBuffer[P]
	arbiters     [][]*arbitration.RoundRobin
}

// Config returns the configuration the interface was built with.
func (c *Comp[P]) Config() config.Config {
	return c.cfg
}

// TrafficManager returns the fabric the interface is attached to.
func (c *Comp[P]) TrafficManager() TrafficManager[P] {
	return c.trafficManager
}

// CurrentCycle returns the number of cycles run so far.
func (c *Comp[P]) CurrentCycle() uint64 {
	return c.clk
}

// FlitSize returns the flit size in bytes.
func (c *Comp[P]) FlitSize() int {
	return c.cfg.FlitSize
}

// HeaderSize returns the number of bytes added to every injected packet.
func (c *Comp[P]) HeaderSize() int {
	return c.cfg.HeaderSize
}

// PrintActivity tells whether the fabric should log its activity.
func (c *Comp[P]) PrintActivity() bool {
	return c.cfg.PrintActivity
}

// Run advances the interface and the fabric by one cycle.
func (c *Comp[P]) Run() {
	c.clk++
	c.trafficManager.Step()
}

// GetStats looks up a statistic of the fabric. A missing statistic is
// reported as a warning and yields nil.
func (c *Comp[P]) GetStats(name string) Stats {
	s := c.trafficManager.Stats(name)
	if s == nil {
		log.Printf("warning: statistics %s not found", name)
		return nil
	}

	return s
}

// PrintStats refreshes and displays the statistics of the fabric.
func (c *Comp[P]) PrintStats(w io.Writer) {
	c.trafficManager.UpdateStats()
	c.trafficManager.DisplayStats(w)
}

// Buffers lists every ejection and boundary buffer of the interface.
func (c *Comp[P]) Buffers() []Buffer {
	var bufs []Buffer

	for s := range c.ejectionBuffers {
		for n := range c.ejectionBuffers[s] {
			for vc := range c.ejectionBuffers[s][n] {
				bufs = append(bufs,
					c.ejectionBuffers[s][n][vc],
					c.boundaryBuffers[s][n][vc])
			}
		}
	}

	return bufs
}

// NumPackets returns the number of complete packets waiting at a VC.
func (c *Comp[P]) NumPackets(subnet, node, vc int) int {
	c.mustBeValidVC(subnet, node, vc)
	return c.boundaryBuffers[subnet][node][vc].NumPackets()
}

// EjectionBufferLevel returns the number of flits waiting in the ejection
// buffer of a VC.
func (c *Comp[P]) EjectionBufferLevel(subnet, node, vc int) int {
	c.mustBeValidVC(subnet, node, vc)
	return c.ejectionBuffers[subnet][node][vc].Size()
}

// BoundaryBufferLevel returns the number of fragments held in the boundary
// buffer of a VC.
func (c *Comp[P]) BoundaryBufferLevel(subnet, node, vc int) int {
	c.mustBeValidVC(subnet, node, vc)
	return c.boundaryBuffers[subnet][node][vc].Size()
}

// RoundRobinCursor returns the VC that the next delivery at a node favors.
func (c *Comp[P]) RoundRobinCursor(subnet, node int) int {
	c.mustBeValidNode(subnet, node)
	return c.arbiters[subnet][node].Cursor()
}

func (c *Comp[P]) invokeHook(
	pos *hooking.HookPos,
	item any,
	loc messaging.Location,
) {
	if c.NumHooks() == 0 {
		return
	}

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    pos,
		Cycle:  c.clk,
		Item:   item,
		Detail: loc,
	})
}

func (c *Comp[P]) mustBeValidNode(subnet, node int) {
	if subnet < 0 || subnet >= c.cfg.Subnets ||
		node < 0 || node >= c.cfg.Nodes {
		fatal(&ConsistencyError{
			Kind:     IndexOutOfRange,
			Location: messaging.Location{Subnet: subnet, Node: node, VC: -1},
			Cycle:    c.clk,
		})
	}
}

func (c *Comp[P]) mustBeValidVC(subnet, node, vc int) {
	c.mustBeValidNode(subnet, node)

	if vc < 0 || vc >= c.cfg.NumVCs {
		fatal(&ConsistencyError{
			Kind:     IndexOutOfRange,
			Location: messaging.Location{Subnet: subnet, Node: node, VC: vc},
			Cycle:    c.clk,
		})
	}
}
