package acceptance

import (
	"github.com/sarchlab/nocif/noc/standalone"
)

// Agent sends a predetermined list of messages from one node and reports the
// messages it receives to the test.
type Agent struct {
	*standalone.Agent

	test       *Test
	MsgsToSend []*standalone.TrafficMsg
}

// NewAgent creates an agent on node of the test's interface.
func NewAgent(name string, node int, test *Test) *Agent {
	a := &Agent{test: test}

	a.Agent = standalone.MakeAgentBuilder().
		WithInterface(test.fabric.NIF()).
		WithNode(node).
		WithNumPackets(0).
		Build(name)
	a.OnReceive = func(msg *standalone.TrafficMsg) {
		test.receiveMsg(msg, node)
	}

	return a
}

// Tick hands the next message to the network and receives messages.
func (a *Agent) Tick() bool {
	madeProgress := false

	if len(a.MsgsToSend) > 0 && a.Enqueue(a.MsgsToSend[0]) {
		a.MsgsToSend = a.MsgsToSend[1:]
		madeProgress = true
	}

	madeProgress = a.Agent.Tick() || madeProgress

	return madeProgress
}
