package nif

import (
	"github.com/sarchlab/nocif/noc/config"
	"github.com/sarchlab/nocif/noc/messaging"
	"github.com/sarchlab/nocif/noc/networking/arbitration"
	"github.com/sarchlab/nocif/sim/naming"
	"github.com/sarchlab/nocif/sim/queueing"
)

// Builder can build network interfaces.
type Builder[P any] struct {
	cfg            config.Config
	cfgGiven       bool
	trafficManager TrafficManager[P]
}

// MakeBuilder creates a new Builder.
func MakeBuilder[P any]() Builder[P] {
	return Builder[P]{}
}

// WithConfig sets the configuration. Defaults are filled before the
// configuration is validated.
func (b Builder[P]) WithConfig(cfg config.Config) Builder[P] {
	b.cfg = cfg.WithDefaults()
	b.cfgGiven = true

	return b
}

// WithTrafficManager sets the fabric that the interface is attached to.
func (b Builder[P]) WithTrafficManager(tm TrafficManager[P]) Builder[P] {
	b.trafficManager = tm
	return b
}

// Build creates the interface with all its buffers empty and every
// round-robin cursor at VC 0.
func (b Builder[P]) Build(name string) *Comp[P] {
	b.configMustBeValid()
	b.trafficManagerMustBeGiven()

	c := &Comp[P]{
		NamedBase:      naming.MakeNamedBase(name),
		cfg:            b.cfg,
		trafficManager: b.trafficManager,
	}

	b.buildBuffers(c)

	return c
}

func (b Builder[P]) buildBuffers(c *Comp[P]) {
	cfg := b.cfg
	now := c.CurrentCycle

	c.ejectionBuffers = make([][][]flitBuffer[P], cfg.Subnets)
	c.boundaryBuffers = make([][][]*boundarySlot[P], cfg.Subnets)
	c.ejectedFlits = make([][]flitBuffer[P], cfg.Subnets)
	c.arbiters = make([][]*arbitration.RoundRobin, cfg.Subnets)

	for s := 0; s < cfg.Subnets; s++ {
		subnetName := naming.Indexed(c.Name(), "Subnet", s)

		c.ejectionBuffers[s] = make([][]flitBuffer[P], cfg.Nodes)
		c.boundaryBuffers[s] = make([][]*boundarySlot[P], cfg.Nodes)
		c.ejectedFlits[s] = make([]flitBuffer[P], cfg.Nodes)
		c.arbiters[s] = make([]*arbitration.RoundRobin, cfg.Nodes)

		for n := 0; n < cfg.Nodes; n++ {
			nodeName := naming.Indexed(subnetName, "Node", n)

			c.ejectedFlits[s][n] = queueing.NewBuffer[*messaging.Flit[P]](
				nodeName+".EjectedFlitQueue", queueing.Unbounded)
			c.arbiters[s][n] = arbitration.NewRoundRobin(cfg.NumVCs)

			c.ejectionBuffers[s][n] = make([]flitBuffer[P], cfg.NumVCs)
			c.boundaryBuffers[s][n] = make([]*boundarySlot[P], cfg.NumVCs)

			for vc := 0; vc < cfg.NumVCs; vc++ {
				vcName := naming.Indexed(nodeName, "VC", vc)
				loc := messaging.Location{Subnet: s, Node: n, VC: vc}

				c.ejectionBuffers[s][n][vc] =
					queueing.NewBuffer[*messaging.Flit[P]](
						vcName+".EjectionBuffer", cfg.EjectionBufferSize)
				c.boundaryBuffers[s][n][vc] = newBoundarySlot[P](
					vcName+".BoundaryBuffer", loc,
					cfg.BoundaryBufferSize, now)
			}
		}
	}
}

func (b Builder[P]) configMustBeValid() {
	if !b.cfgGiven {
		panic("config is not given")
	}

	if err := b.cfg.Validate(); err != nil {
		panic(err)
	}
}

func (b Builder[P]) trafficManagerMustBeGiven() {
	if b.trafficManager == nil {
		panic("traffic manager is not given")
	}
}
