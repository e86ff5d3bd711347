package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/sarchlab/nocif/monitoring"
	"github.com/sarchlab/nocif/noc/config"
	"github.com/sarchlab/nocif/noc/messaging"
	"github.com/sarchlab/nocif/noc/nif"
	"github.com/sarchlab/nocif/noc/standalone"
	"github.com/sarchlab/nocif/sim/bottleneckanalysis"
	"github.com/sarchlab/nocif/sim/hooking"
	"github.com/sarchlab/nocif/sim/id"
	"github.com/sarchlab/nocif/tracing"
)

type runOptions struct {
	configPath    string
	cycles        uint64
	packets       int
	injectionRate float64
	packetType    string
	monitor       bool
	port          int
	browser       bool
	analyze       int
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run random traffic through the network interface.",
	Long: "Run random traffic between every pair of nodes through the " +
		"network interface on the loopback fabric, then print statistics.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts := runOptions{}
		flags := cmd.Flags()

		opts.configPath, _ = flags.GetString("config")
		opts.cycles, _ = flags.GetUint64("cycles")
		opts.packets, _ = flags.GetInt("packets")
		opts.injectionRate, _ = flags.GetFloat64("rate")
		opts.packetType, _ = flags.GetString("type")
		opts.monitor, _ = flags.GetBool("monitor")
		opts.port, _ = flags.GetInt("port")
		opts.browser, _ = flags.GetBool("browser")
		opts.analyze, _ = flags.GetInt("analyze-buffers")

		if unique, _ := flags.GetBool("unique-ids"); unique {
			id.UseParallel()
		}

		return runSimulation(opts, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Uint64("cycles", 10000, "Maximum number of cycles to run")
	runCmd.Flags().Int("packets", -1,
		"Packets generated per node, negative for no limit")
	runCmd.Flags().Float64("rate", 0.1,
		"Probability that a node generates a packet in a cycle")
	runCmd.Flags().String("type", "any",
		"Packet type: read, write, read_reply, write_reply or any")
	runCmd.Flags().Bool("monitor", false, "Start the monitoring server")
	runCmd.Flags().Int("port", 0, "Port of the monitoring server")
	runCmd.Flags().Bool("browser", false,
		"Open the monitoring server in a browser")
	runCmd.Flags().Int("analyze-buffers", 0,
		"Report the N buffers with the highest average level, 0 to disable")
	runCmd.Flags().Bool("unique-ids", false,
		"Use globally unique flit and packet IDs instead of sequential ones")
}

type simulation struct {
	fabric   *standalone.Fabric[*standalone.TrafficMsg]
	ni       *nif.Comp[*standalone.TrafficMsg]
	agents   []*standalone.Agent
	tracer   tracing.Tracer
	monitor  *monitoring.Monitor
	analyzer *bottleneckanalysis.BufferAnalyzer
}

func runSimulation(opts runOptions, w io.Writer) error {
	if opts.configPath == "" {
		return fmt.Errorf("--config is required")
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	s, err := buildSimulation(cfg, opts)
	if err != nil {
		return err
	}

	s.run(opts.cycles)

	fmt.Fprintf(w, "cycles: %d\n", s.ni.CurrentCycle())
	s.ni.PrintStats(w)

	if s.analyzer != nil {
		s.analyzer.Report(w, opts.analyze)
	}

	if s.tracer != nil {
		return s.tracer.Terminate()
	}

	return nil
}

func buildSimulation(cfg config.Config, opts runOptions) (*simulation, error) {
	packetType, err := messaging.ParsePacketType(opts.packetType)
	if err != nil {
		return nil, err
	}

	s := &simulation{}
	s.fabric = standalone.MakeBuilder[*standalone.TrafficMsg]().
		WithConfig(cfg).
		Build("Fabric")
	s.ni = s.fabric.NIF()

	s.tracer, err = tracing.NewTracerFromPath(cfg.WatchOut)
	if err != nil {
		return nil, err
	}

	if s.tracer != nil {
		tracing.CollectTrace(s.ni, s.tracer)
	}

	if cfg.PrintActivity {
		s.ni.AcceptHook(hooking.HookFunc(printActivity))
	}

	for node := 0; node < cfg.Nodes; node++ {
		a := standalone.MakeAgentBuilder().
			WithInterface(s.ni).
			WithNode(node).
			WithInjectionRate(opts.injectionRate).
			WithPacketType(packetType).
			WithNumPackets(opts.packets).
			Build(fmt.Sprintf("Agent[%d]", node))
		s.agents = append(s.agents, a)
	}

	if opts.analyze > 0 {
		s.analyzer = bottleneckanalysis.NewBufferAnalyzer(0)
		for _, b := range s.ni.Buffers() {
			s.analyzer.AddBuffer(b)
		}
	}

	if opts.monitor {
		s.startMonitor(opts)
	}

	return s, nil
}

func (s *simulation) startMonitor(opts runOptions) {
	s.monitor = monitoring.NewMonitor().WithPortNumber(opts.port)
	if opts.browser {
		s.monitor.WithBrowser()
	}

	s.monitor.RegisterClock(s.ni)
	s.monitor.RegisterComponent(s.fabric)
	s.monitor.RegisterComponent(s.ni)

	for _, a := range s.agents {
		s.monitor.RegisterComponent(a)
	}

	s.monitor.StartServer()
}

func (s *simulation) run(cycles uint64) {
	var bar *monitoring.ProgressBar
	if s.monitor != nil {
		bar = s.monitor.CreateProgressBar("Cycles", cycles)
		defer s.monitor.CompleteProgressBar(bar)
	}

	for s.ni.CurrentCycle() < cycles && !s.finished() {
		if s.monitor != nil {
			s.monitor.Tick(s.step)
			bar.IncrementFinished(1)
		} else {
			s.step()
		}
	}
}

func (s *simulation) step() {
	s.ni.Run()

	for _, a := range s.agents {
		a.Tick()
	}

	if s.analyzer != nil {
		s.analyzer.Sample()
	}
}

func (s *simulation) finished() bool {
	var sent, received uint64

	for _, a := range s.agents {
		if !a.Done() {
			return false
		}

		sent += a.NumSent
		received += a.NumReceived
	}

	return sent == received
}

func printActivity(ctx hooking.HookCtx) {
	if ctx.Pos != nif.HookPosPacketDelivered {
		return
	}

	pkt := ctx.Item.(messaging.Packet[*standalone.TrafficMsg])
	log.Printf("cycle %d: delivered %s at %s",
		ctx.Cycle, pkt.Payload(), ctx.Detail)
}
