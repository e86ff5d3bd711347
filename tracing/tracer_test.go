package tracing

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/nocif/datarecording"
	"github.com/sarchlab/nocif/noc/messaging"
	"github.com/sarchlab/nocif/sim/hooking"
	"github.com/sarchlab/nocif/sim/naming"
)

type tracedComp struct {
	naming.NamedBase
	hooking.HookableBase
}

type tracedItem string

func (i tracedItem) TraceID() string {
	return string(i)
}

var hookPosTest = &hooking.HookPos{Name: "Test"}

var _ = Describe("Trace Hook", func() {
	var (
		mockCtrl *gomock.Controller
		tracer   *MockTracer
		comp     *tracedComp
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		tracer = NewMockTracer(mockCtrl)
		comp = &tracedComp{NamedBase: naming.MakeNamedBase("NIF")}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should turn hook invocations into records", func() {
		CollectTrace(comp, tracer)

		tracer.EXPECT().Trace(Record{
			Cycle:  5,
			Where:  "NIF",
			What:   "Test",
			Subnet: 1,
			Node:   2,
			VC:     3,
			ID:     "flit-1",
		})

		comp.InvokeHook(hooking.HookCtx{
			Domain: comp,
			Pos:    hookPosTest,
			Cycle:  5,
			Item:   tracedItem("flit-1"),
			Detail: messaging.Location{Subnet: 1, Node: 2, VC: 3},
		})
	})

	It("should mark unknown locations", func() {
		CollectTrace(comp, tracer)

		tracer.EXPECT().Trace(Record{
			Where:  "NIF",
			What:   "Test",
			Subnet: -1,
			Node:   -1,
			VC:     -1,
		})

		comp.InvokeHook(hooking.HookCtx{Domain: comp, Pos: hookPosTest})
	})

	It("should not attach the same tracer twice", func() {
		CollectTrace(comp, tracer)

		Expect(func() { CollectTrace(comp, tracer) }).To(Panic())
	})
})

var _ = Describe("WatchTracer", func() {
	It("should write one line per record", func() {
		buf := &bytes.Buffer{}
		t := NewWatchTracer(buf)

		t.Trace(Record{Cycle: 7, Where: "NIF", What: "NIF Flit Ejected",
			Subnet: 0, Node: 3, VC: 1, ID: "12"})
		Expect(t.Flush()).To(Succeed())

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		Expect(lines).To(Equal([]string{
			"cycle,where,what,subnet,node,vc,id",
			"7,NIF,NIF Flit Ejected,0,3,1,12",
		}))
	})

	It("should buffer until flushed", func() {
		buf := &bytes.Buffer{}
		t := NewWatchTracer(buf)

		t.Trace(Record{Cycle: 1})

		Expect(buf.Len()).To(Equal(0))
		Expect(t.Terminate()).To(Succeed())
		Expect(buf.Len()).NotTo(Equal(0))
	})
})

var _ = Describe("DBTracer", func() {
	It("should store records in a table", func() {
		path := filepath.Join(GinkgoT().TempDir(), "trace")
		w := datarecording.NewSQLiteWriter(path)
		Expect(w.Init()).To(Succeed())

		t := NewDBTracer(w)
		t.Trace(Record{Cycle: 1, What: "a", ID: "x"})
		t.Trace(Record{Cycle: 2, What: "b", ID: "y"})
		Expect(t.Terminate()).To(Succeed())

		t.Trace(Record{Cycle: 3})

		reader, err := datarecording.NewReader(w.Filename())
		Expect(err).NotTo(HaveOccurred())
		defer reader.Close()

		reader.MapTable(TableName, Record{})
		results, total, err := reader.Query(context.Background(), TableName,
			datarecording.QueryParams{OrderBy: "Cycle"})

		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(Equal(2))
		Expect(results[1].(*Record).ID).To(Equal("y"))
	})
})

var _ = Describe("NewTracerFromPath", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("should disable tracing for empty paths", func() {
		for _, path := range []string{"", "-"} {
			t, err := NewTracerFromPath(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(t).To(BeNil())
		}
	})

	It("should pick a database for sqlite paths", func() {
		t, err := NewTracerFromPath(filepath.Join(dir, "trace.sqlite3"))

		Expect(err).NotTo(HaveOccurred())
		Expect(t).To(BeAssignableToTypeOf(&DBTracer{}))
		Expect(t.Terminate()).To(Succeed())
	})

	It("should read back records traced into a sqlite path", func() {
		path := filepath.Join(dir, "roundtrip.sqlite3")

		t, err := NewTracerFromPath(path)
		Expect(err).NotTo(HaveOccurred())

		t.Trace(Record{Cycle: 1 << 40, What: "far", Node: 3, ID: "z"})
		Expect(t.Terminate()).To(Succeed())

		reader, err := datarecording.NewReader(path)
		Expect(err).NotTo(HaveOccurred())
		defer reader.Close()

		reader.MapTable(TableName, Record{})
		results, total, err := reader.Query(context.Background(), TableName,
			datarecording.QueryParams{})

		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(Equal(1))
		Expect(results[0].(*Record).Cycle).To(Equal(uint64(1 << 40)))
		Expect(results[0].(*Record).Node).To(Equal(3))
	})

	It("should write text for other paths", func() {
		path := filepath.Join(dir, "trace.csv")

		t, err := NewTracerFromPath(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(t).To(BeAssignableToTypeOf(&WatchTracer{}))

		t.Trace(Record{Cycle: 9})
		Expect(t.Terminate()).To(Succeed())

		content, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(ContainSubstring("9,"))
	})

	It("should report paths that cannot be created", func() {
		_, err := NewTracerFromPath(filepath.Join(dir, "missing", "t.csv"))

		Expect(err).To(HaveOccurred())
	})
})
