package standalone

import (
	"log"

	"github.com/iti/rngstream"

	"github.com/sarchlab/nocif/noc/config"
	"github.com/sarchlab/nocif/noc/messaging"
	"github.com/sarchlab/nocif/noc/nif"
	"github.com/sarchlab/nocif/sim/naming"
)

// MaxPacketBytes returns the largest payload that a network interface with
// the given configuration can always admit and deliver.
func MaxPacketBytes(cfg config.Config) int {
	cfg = cfg.WithDefaults()

	flits := min(cfg.BoundaryBufferSize, cfg.InputBufferSize)

	return flits*cfg.FlitSize - cfg.HeaderSize
}

// Agent is a traffic source and sink attached to one node. It sends random
// messages to the other nodes and consumes every packet delivered to its
// node.
type Agent struct {
	naming.NamedBase

	ni   *nif.Comp[*TrafficMsg]
	node int
	rng  *rngstream.RngStream

	injectionRate float64
	maxBytes      int
	packetType    messaging.PacketType
	remaining     int
	pending       *TrafficMsg

	OnReceive func(msg *TrafficMsg)

	NumSent, NumReceived     uint64
	BytesSent, BytesReceived uint64
}

// Node returns the node the agent is attached to.
func (a *Agent) Node() int {
	return a.node
}

// Done tells whether the agent has sent all the messages it was asked to.
func (a *Agent) Done() bool {
	return a.remaining == 0 && a.pending == nil
}

// Tick generates, sends and receives messages.
func (a *Agent) Tick() bool {
	madeProgress := false

	a.generate()
	madeProgress = a.send() || madeProgress
	madeProgress = a.recv() || madeProgress

	return madeProgress
}

func (a *Agent) generate() {
	if a.pending != nil || a.remaining == 0 {
		return
	}

	if a.rng.RandU01() >= a.injectionRate {
		return
	}

	cfg := a.ni.Config()
	subnet := a.rng.RandInt(0, cfg.Subnets-1)
	bytes := a.rng.RandInt(1, a.maxBytes)

	msg := NewTrafficMsg(subnet, a.node, a.randomDst(cfg.Nodes), bytes)
	msg.Type = a.packetType
	a.pending = msg

	if a.remaining > 0 {
		a.remaining--
	}
}

func (a *Agent) randomDst(nodes int) int {
	if nodes == 1 {
		return a.node
	}

	dst := a.rng.RandInt(0, nodes-2)
	if dst >= a.node {
		dst++
	}

	return dst
}

// Enqueue schedules a message to be sent. It takes priority over randomly
// generated traffic.
func (a *Agent) Enqueue(msg *TrafficMsg) bool {
	if a.pending != nil {
		return false
	}

	a.pending = msg

	return true
}

func (a *Agent) send() bool {
	msg := a.pending
	if msg == nil {
		return false
	}

	if a.ni.IsFull(a.node, msg.Subnet, msg.Bytes) {
		return false
	}

	msg.SendCycle = a.ni.CurrentCycle()
	a.ni.Push(msg, msg.Subnet, 0, msg.Bytes, msg.Type, msg.Src, msg.Dst)

	a.pending = nil
	a.NumSent++
	a.BytesSent += uint64(msg.Bytes)

	return true
}

func (a *Agent) recv() bool {
	madeProgress := false

	for subnet := 0; subnet < a.ni.Config().Subnets; subnet++ {
		pkt, ok := a.ni.Pop(a.node, subnet)
		if !ok {
			continue
		}

		msg := pkt.Payload()
		if msg.Dst != a.node {
			log.Panicf("%s received %s", a.Name(), msg)
		}

		a.NumReceived++
		a.BytesReceived += uint64(msg.Bytes)

		if a.OnReceive != nil {
			a.OnReceive(msg)
		}

		madeProgress = true
	}

	return madeProgress
}

// AgentBuilder can build agents.
type AgentBuilder struct {
	ni            *nif.Comp[*TrafficMsg]
	node          int
	injectionRate float64
	maxBytes      int
	packetType    messaging.PacketType
	numPackets    int
}

// MakeAgentBuilder creates an AgentBuilder with an injection rate of 0.1
// packets per cycle and unlimited packets.
func MakeAgentBuilder() AgentBuilder {
	return AgentBuilder{
		injectionRate: 0.1,
		packetType:    messaging.PacketTypeAny,
		numPackets:    -1,
	}
}

// WithInterface sets the network interface the agent uses.
func (b AgentBuilder) WithInterface(ni *nif.Comp[*TrafficMsg]) AgentBuilder {
	b.ni = ni
	return b
}

// WithNode sets the node that the agent is attached to.
func (b AgentBuilder) WithNode(node int) AgentBuilder {
	b.node = node
	return b
}

// WithInjectionRate sets the probability to generate a message each cycle.
func (b AgentBuilder) WithInjectionRate(rate float64) AgentBuilder {
	b.injectionRate = rate
	return b
}

// WithMaxBytes sets the largest message size. It defaults to
// MaxPacketBytes of the interface configuration.
func (b AgentBuilder) WithMaxBytes(n int) AgentBuilder {
	b.maxBytes = n
	return b
}

// WithPacketType sets the type of the generated packets.
func (b AgentBuilder) WithPacketType(t messaging.PacketType) AgentBuilder {
	b.packetType = t
	return b
}

// WithNumPackets limits how many random messages the agent generates. A
// negative number means no limit.
func (b AgentBuilder) WithNumPackets(n int) AgentBuilder {
	b.numPackets = n
	return b
}

// Build creates the agent. The random stream is named after the agent.
func (b AgentBuilder) Build(name string) *Agent {
	if b.ni == nil {
		panic("network interface is not given")
	}

	cfg := b.ni.Config()
	if b.node < 0 || b.node >= cfg.Nodes {
		log.Panicf("node %d out of range", b.node)
	}

	maxBytes := b.maxBytes
	if maxBytes == 0 {
		maxBytes = MaxPacketBytes(cfg)
	}

	if maxBytes <= 0 || maxBytes > MaxPacketBytes(cfg) {
		log.Panicf("max packet size %d cannot be admitted", maxBytes)
	}

	return &Agent{
		NamedBase:     naming.MakeNamedBase(name),
		ni:            b.ni,
		node:          b.node,
		rng:           rngstream.New(name),
		injectionRate: b.injectionRate,
		maxBytes:      maxBytes,
		packetType:    b.packetType,
		remaining:     b.numPackets,
	}
}
