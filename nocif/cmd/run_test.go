package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const testConfig = `
subnets: 1
nodes: 4
flit_size: 16
num_vcs: 2
ejection_buffer_size: 2
boundary_buffer_size: 8
header_size: 8
fabric_latency: 2
`

var _ = Describe("Commands", func() {
	var dir string

	writeConfig := func(extra string) string {
		path := filepath.Join(dir, "cfg.yaml")
		Expect(os.WriteFile(path, []byte(testConfig+extra), 0o644)).
			To(Succeed())

		return path
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("should print the effective configuration", func() {
		buf := &bytes.Buffer{}

		Expect(dumpConfig(writeConfig(""), buf)).To(Succeed())

		Expect(buf.String()).To(ContainSubstring("nodes: 4"))
		Expect(buf.String()).To(ContainSubstring("input_buffer_size: 9"))
	})

	It("should require a configuration", func() {
		Expect(dumpConfig("", &bytes.Buffer{})).NotTo(Succeed())
		Expect(runSimulation(runOptions{}, &bytes.Buffer{})).NotTo(Succeed())
	})

	It("should run until every packet is delivered", func() {
		buf := &bytes.Buffer{}
		opts := runOptions{
			configPath:    writeConfig(""),
			cycles:        100000,
			packets:       10,
			injectionRate: 0.5,
			packetType:    "write",
		}

		Expect(runSimulation(opts, buf)).To(Succeed())

		Expect(buf.String()).To(ContainSubstring("latency"))
		Expect(buf.String()).NotTo(ContainSubstring("cycles: 100000"))
	})

	It("should stop at the cycle limit", func() {
		buf := &bytes.Buffer{}
		opts := runOptions{
			configPath:    writeConfig(""),
			cycles:        50,
			packets:       -1,
			injectionRate: 0.1,
			packetType:    "any",
		}

		Expect(runSimulation(opts, buf)).To(Succeed())

		Expect(buf.String()).To(ContainSubstring("cycles: 50"))
	})

	It("should report the fullest buffers", func() {
		buf := &bytes.Buffer{}
		opts := runOptions{
			configPath:    writeConfig(""),
			cycles:        100,
			packets:       -1,
			injectionRate: 0.5,
			packetType:    "any",
			analyze:       3,
		}

		Expect(runSimulation(opts, buf)).To(Succeed())

		Expect(buf.String()).To(ContainSubstring(
			"name, cycles, current, average, period average, capacity"))
	})

	It("should write the trace", func() {
		trace := filepath.Join(dir, "trace.csv")
		opts := runOptions{
			configPath:    writeConfig("watch_out: " + trace + "\n"),
			cycles:        200,
			packets:       2,
			injectionRate: 1,
			packetType:    "any",
		}

		Expect(runSimulation(opts, &bytes.Buffer{})).To(Succeed())

		content, err := os.ReadFile(trace)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(ContainSubstring("NIF Packet Delivered"))
	})

	It("should print a trace recorded in a database", func() {
		trace := filepath.Join(dir, "trace.sqlite3")
		opts := runOptions{
			configPath:    writeConfig("watch_out: " + trace + "\n"),
			cycles:        200,
			packets:       2,
			injectionRate: 1,
			packetType:    "any",
		}

		Expect(runSimulation(opts, &bytes.Buffer{})).To(Succeed())

		buf := &bytes.Buffer{}
		Expect(printTrace(context.Background(),
			traceOptions{path: trace, node: 1, limit: 5}, buf)).To(Succeed())

		Expect(buf.String()).To(ContainSubstring("NIF"))
		Expect(buf.String()).To(MatchRegexp(`\d+ of \d+ events`))
	})

	It("should reject unknown packet types", func() {
		opts := runOptions{
			configPath: writeConfig(""),
			cycles:     10,
			packetType: "bogus",
		}

		Expect(runSimulation(opts, &bytes.Buffer{})).NotTo(Succeed())
	})
})
