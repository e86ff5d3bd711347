// Package acceptance runs end-to-end checks of a network interface over the
// standalone fabric.
package acceptance

import (
	"fmt"
	"io"
	"log"

	"github.com/iti/rngstream"

	"github.com/sarchlab/nocif/noc/config"
	"github.com/sarchlab/nocif/noc/standalone"
)

// Test is a test case.
type Test struct {
	fabric *standalone.Fabric[*standalone.TrafficMsg]
	agents []*Agent
	rng    *rngstream.RngStream

	msgs              []*standalone.TrafficMsg
	receivedMsgs      []*standalone.TrafficMsg
	receivedMsgsTable map[*standalone.TrafficMsg]bool
}

// NewTest creates a test with one agent per node.
func NewTest(name string, cfg config.Config) *Test {
	t := &Test{
		rng:               rngstream.New(name),
		receivedMsgsTable: make(map[*standalone.TrafficMsg]bool),
	}

	t.fabric = standalone.MakeBuilder[*standalone.TrafficMsg]().
		WithConfig(cfg).
		Build(name)

	for i := 0; i < cfg.Nodes; i++ {
		t.agents = append(t.agents,
			NewAgent(fmt.Sprintf("%s.Agent[%d]", name, i), i, t))
	}

	return t
}

// Fabric returns the fabric that the test runs on.
func (t *Test) Fabric() *standalone.Fabric[*standalone.TrafficMsg] {
	return t.fabric
}

// GenerateMsgs generates n messages from a random node to a random other
// node.
func (t *Test) GenerateMsgs(n int) {
	cfg := t.fabric.NIF().Config()
	maxBytes := standalone.MaxPacketBytes(cfg)

	for i := 0; i < n; i++ {
		src := t.rng.RandInt(0, len(t.agents)-1)

		dst := src
		for len(t.agents) > 1 && dst == src {
			dst = t.rng.RandInt(0, len(t.agents)-1)
		}

		msg := standalone.NewTrafficMsg(
			t.rng.RandInt(0, cfg.Subnets-1),
			src, dst,
			t.rng.RandInt(1, maxBytes))

		t.agents[src].MsgsToSend = append(t.agents[src].MsgsToSend, msg)
		t.msgs = append(t.msgs, msg)
	}
}

// Run advances the interface and the agents until every message is received
// or maxCycles elapse. It returns the number of cycles run.
func (t *Test) Run(maxCycles uint64) uint64 {
	ni := t.fabric.NIF()
	start := ni.CurrentCycle()

	for ni.CurrentCycle()-start < maxCycles && !t.allReceived() {
		ni.Run()

		for _, a := range t.agents {
			a.Tick()
		}
	}

	return ni.CurrentCycle() - start
}

func (t *Test) allReceived() bool {
	return len(t.receivedMsgs) == len(t.msgs)
}

func (t *Test) receiveMsg(msg *standalone.TrafficMsg, node int) {
	t.msgMustBeReceivedAtItsDestination(msg, node)
	t.msgMustNotBeReceivedBefore(msg)

	t.receivedMsgs = append(t.receivedMsgs, msg)
}

func (t *Test) msgMustBeReceivedAtItsDestination(
	msg *standalone.TrafficMsg,
	node int,
) {
	if msg.Dst != node {
		log.Panicf("msg %s delivered to node %d", msg, node)
	}
}

func (t *Test) msgMustNotBeReceivedBefore(msg *standalone.TrafficMsg) {
	if t.receivedMsgsTable[msg] {
		log.Panicf("msg %s is double delivered", msg)
	}

	t.receivedMsgsTable[msg] = true
}

// Missing returns the messages that were sent but not received.
func (t *Test) Missing() []*standalone.TrafficMsg {
	var missing []*standalone.TrafficMsg

	for _, msg := range t.msgs {
		if !t.receivedMsgsTable[msg] {
			missing = append(missing, msg)
		}
	}

	return missing
}

// MustHaveReceivedAllMsgs asserts that all the messages sent are received.
func (t *Test) MustHaveReceivedAllMsgs() {
	missing := t.Missing()
	if len(missing) == 0 {
		return
	}

	for _, msg := range missing {
		log.Printf("msg %s expected, but not received\n", msg)
	}

	panic("some messages are dropped")
}

// ReportBandwidthAchieved prints the bytes per cycle sent and received by
// each agent.
func (t *Test) ReportBandwidthAchieved(w io.Writer) {
	now := float64(t.fabric.NIF().CurrentCycle())
	if now == 0 {
		return
	}

	for _, a := range t.agents {
		fmt.Fprintf(w,
			"agent %s, send bandwidth %.2f B/cycle, recv bandwidth %.2f B/cycle\n",
			a.Name(),
			float64(a.BytesSent)/now,
			float64(a.BytesReceived)/now)
	}
}
