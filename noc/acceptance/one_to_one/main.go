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

	t := acceptance.NewTest("OneToOne", config.Config{
		Subnets:            1,
		Nodes:              2,
		FlitSize:           8,
		NumVCs:             1,
		EjectionBufferSize: 4,
		BoundaryBufferSize: 16,
		InputBufferSize:    16,
	})

	t.GenerateMsgs(*numMsgs)
	t.Run(uint64(*numMsgs) * 100)

	t.MustHaveReceivedAllMsgs()
	t.ReportBandwidthAchieved(os.Stdout)
	atexit.Exit(0)
}
