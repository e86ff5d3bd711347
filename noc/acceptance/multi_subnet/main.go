package main

import (
	"flag"
	"os"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/nocif/noc/acceptance"
	"github.com/sarchlab/nocif/noc/config"
)

var numMsgs = flag.Int("msgs", 20000, "number of messages to send")

func main() {
	flag.Parse()

	t := acceptance.NewTest("MultiSubnet", config.Config{
		Subnets:            2,
		Nodes:              16,
		FlitSize:           16,
		NumVCs:             4,
		EjectionBufferSize: 2,
		BoundaryBufferSize: 8,
		HeaderSize:         8,
		FabricLatency:      10,
	})

	t.GenerateMsgs(*numMsgs)
	t.Run(uint64(*numMsgs) * 100)

	t.MustHaveReceivedAllMsgs()
	t.ReportBandwidthAchieved(os.Stdout)
	atexit.Exit(0)
}
