package standalone

import (
	"fmt"
	"io"
	"log"
	"text/tabwriter"

	"golang.org/x/exp/slices"

	"github.com/sarchlab/nocif/noc/config"
	"github.com/sarchlab/nocif/noc/messaging"
	"github.com/sarchlab/nocif/noc/nif"
	"github.com/sarchlab/nocif/sim/naming"
	"github.com/sarchlab/nocif/sim/queueing"
)

type flit[P any] = *messaging.Flit[P]

// Fabric is a loopback network. Every source node has a private fixed
// latency link that can reach every node of its subnet. Flits of a packet
// stay on the VC chosen at injection, and a packet holds its destination VC
// from head to tail so that packets never interleave within a VC.
type Fabric[P any] struct {
	naming.NamedBase

	cfg config.Config
	ni  *nif.Comp[P]

	inputQueues [][]queueing.Buffer[flit[P]]
	links       [][]queueing.Pipeline[flit[P]]
	arrivals    [][]queueing.Buffer[flit[P]]
	vcCursors   [][]int
	vcOwners    [][][]string

	stats map[string]*Stat
}

// NIF returns the network interface attached to the fabric.
func (f *Fabric[P]) NIF() *nif.Comp[P] {
	return f.ni
}

// InputQueueLen returns the number of flits waiting to be injected at node.
func (f *Fabric[P]) InputQueueLen(subnet, node int) int {
	return f.inputQueues[subnet][node].Size()
}

// GeneratePacket splits the request into flits on a VC of its type's range
// and queues them for injection. Packets are never dropped; the input queue
// grows beyond its nominal capacity if the caller ignored IsFull.
func (f *Fabric[P]) GeneratePacket(req messaging.PacketRequest[P]) {
	n := req.NumFlits(f.cfg.FlitSize)
	if n > f.cfg.BoundaryBufferSize {
		log.Panicf("packet of %d flits can never fit in a boundary buffer "+
			"of %d flits", n, f.cfg.BoundaryBufferSize)
	}

	vc := f.nextVC(req)
	flits := messaging.Flitize(req, f.cfg.FlitSize, vc)

	queue := f.inputQueues[req.Subnet][req.Src]
	for _, fl := range flits {
		queue.Push(fl)
	}

	f.stats[StatInjectedFlits].AddSample(float64(len(flits)))
}

func (f *Fabric[P]) nextVC(req messaging.PacketRequest[P]) int {
	begin, end := f.cfg.VCRange(req.Type)
	width := end - begin + 1

	cursor := &f.vcCursors[req.Subnet][req.Src]
	vc := begin + *cursor%width
	*cursor++

	return vc
}

// Step advances the fabric by one cycle.
func (f *Fabric[P]) Step() {
	if f.ni == nil {
		panic("fabric is not attached to a network interface")
	}

	for s := 0; s < f.cfg.Subnets; s++ {
		for n := 0; n < f.cfg.Nodes; n++ {
			f.links[s][n].Tick()
			f.eject(s, n)
		}

		for n := 0; n < f.cfg.Nodes; n++ {
			f.ni.Transfer2BoundaryBuffer(s, n)
			f.reclaim(s, n)
		}

		for n := 0; n < f.cfg.Nodes; n++ {
			f.inject(s, n)
		}
	}
}

func (f *Fabric[P]) inject(subnet, src int) bool {
	queue := f.inputQueues[subnet][src]
	link := f.links[subnet][src]

	if queue.Size() == 0 || !link.CanAccept() {
		return false
	}

	fl, _ := queue.Pop()
	fl.Hops++
	link.Accept(fl)

	return true
}

func (f *Fabric[P]) eject(subnet, src int) bool {
	arrival := f.arrivals[subnet][src]

	fl, ok := arrival.Peek()
	if !ok {
		return false
	}

	owner := &f.vcOwners[subnet][fl.Dst][fl.VC]

	switch {
	case fl.Head && *owner != "":
		return false
	case !fl.Head && *owner != fl.PacketID:
		return false
	case !f.ni.CanEject(subnet, fl.Dst, fl.VC):
		return false
	}

	arrival.Pop()
	f.ni.WriteOutBuffer(subnet, fl.Dst, fl)

	*owner = fl.PacketID
	if fl.Tail {
		*owner = ""
	}

	return true
}

func (f *Fabric[P]) reclaim(subnet, node int) {
	now := f.ni.CurrentCycle()

	for {
		fl, ok := f.ni.GetEjectedFlit(subnet, node)
		if !ok {
			return
		}

		fl.EjectionCycle = now

		if fl.Tail {
			f.stats[StatLatency].AddSample(
				float64(fl.EjectionCycle - fl.InjectionCycle))
			f.stats[StatEjectedFlits].AddSample(float64(fl.NumFlitInPacket))
		}
	}
}

// InFlight returns the number of flits that are queued or travelling in the
// fabric.
func (f *Fabric[P]) InFlight() int {
	n := 0

	for s := range f.inputQueues {
		for node := range f.inputQueues[s] {
			n += f.inputQueues[s][node].Size()
			n += f.links[s][node].Len()
			n += f.arrivals[s][node].Size()
		}
	}

	return n
}

// Stats returns the statistic with the given name, or nil.
func (f *Fabric[P]) Stats(name string) nif.Stats {
	s, ok := f.stats[name]
	if !ok {
		return nil
	}

	return s
}

// UpdateStats does nothing. Summaries are computed when they are read.
func (f *Fabric[P]) UpdateStats() {}

// DisplayStats prints every statistic as a table.
func (f *Fabric[P]) DisplayStats(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "stat\tsamples\tsum\taverage\tstddev\tmax")

	names := make([]string, 0, len(f.stats))
	for name := range f.stats {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		s := f.stats[name]
		fmt.Fprintf(tw, "%s\t%d\t%.0f\t%.3f\t%.3f\t%.0f\n",
			name, s.NumSamples(), s.Sum(), s.Average(), s.StdDev(), s.Max())
	}

	if err := tw.Flush(); err != nil {
		log.Printf("cannot display stats: %v", err)
	}
}
