package standalone

import (
	"github.com/sarchlab/nocif/noc/config"
	"github.com/sarchlab/nocif/noc/nif"
	"github.com/sarchlab/nocif/sim/naming"
	"github.com/sarchlab/nocif/sim/queueing"
)

// Builder can build a loopback fabric together with its network interface.
type Builder[P any] struct {
	cfg config.Config
}

// MakeBuilder creates a new Builder.
func MakeBuilder[P any]() Builder[P] {
	return Builder[P]{}
}

// WithConfig sets the configuration shared by the fabric and the interface.
func (b Builder[P]) WithConfig(cfg config.Config) Builder[P] {
	b.cfg = cfg.WithDefaults()
	return b
}

// Build creates the fabric and an interface named name+".NIF" attached to
// it.
func (b Builder[P]) Build(name string) *Fabric[P] {
	cfg := b.cfg

	f := &Fabric[P]{
		NamedBase: naming.MakeNamedBase(name),
		cfg:       cfg,
		stats: map[string]*Stat{
			StatLatency:       NewStat(StatLatency),
			StatInjectedFlits: NewStat(StatInjectedFlits),
			StatEjectedFlits:  NewStat(StatEjectedFlits),
		},
	}

	f.ni = nif.MakeBuilder[P]().
		WithConfig(cfg).
		WithTrafficManager(f).
		Build(name + ".NIF")
	f.cfg = f.ni.Config()

	b.buildLinks(f)

	return f
}

func (b Builder[P]) buildLinks(f *Fabric[P]) {
	cfg := f.cfg

	f.inputQueues = make([][]queueing.Buffer[flit[P]], cfg.Subnets)
	f.links = make([][]queueing.Pipeline[flit[P]], cfg.Subnets)
	f.arrivals = make([][]queueing.Buffer[flit[P]], cfg.Subnets)
	f.vcCursors = make([][]int, cfg.Subnets)
	f.vcOwners = make([][][]string, cfg.Subnets)

	for s := 0; s < cfg.Subnets; s++ {
		subnetName := naming.Indexed(f.Name(), "Subnet", s)

		f.inputQueues[s] = make([]queueing.Buffer[flit[P]], cfg.Nodes)
		f.links[s] = make([]queueing.Pipeline[flit[P]], cfg.Nodes)
		f.arrivals[s] = make([]queueing.Buffer[flit[P]], cfg.Nodes)
		f.vcCursors[s] = make([]int, cfg.Nodes)
		f.vcOwners[s] = make([][]string, cfg.Nodes)

		for n := 0; n < cfg.Nodes; n++ {
			nodeName := naming.Indexed(subnetName, "Node", n)

			f.inputQueues[s][n] = queueing.NewBuffer[flit[P]](
				nodeName+".InputQueue", queueing.Unbounded)
			f.arrivals[s][n] = queueing.NewBuffer[flit[P]](
				nodeName+".ArrivalBuffer", 1)
			f.links[s][n] = queueing.MakePipelineBuilder[flit[P]]().
				WithNumStage(cfg.FabricLatency).
				WithCyclePerStage(1).
				WithPostPipelineBuffer(f.arrivals[s][n]).
				Build(nodeName + ".Link")
			f.vcOwners[s][n] = make([]string, cfg.NumVCs)
		}
	}
}

var _ nif.TrafficManager[int] = (*Fabric[int])(nil)
