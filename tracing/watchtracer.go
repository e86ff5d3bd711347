package tracing

import (
	"encoding/csv"
	"io"
	"strconv"
	"sync"

	"github.com/tebeka/atexit"
)

// WatchTracer writes one CSV line per record. Output is buffered and flushed
// when the program exits through atexit.
type WatchTracer struct {
	mu     sync.Mutex
	out    io.Writer
	writer *csv.Writer
}

// NewWatchTracer creates a WatchTracer that writes to w. If w is also an
// io.Closer, it is closed by Terminate.
func NewWatchTracer(w io.Writer) *WatchTracer {
	t := &WatchTracer{
		out:    w,
		writer: csv.NewWriter(w),
	}

	t.mustWrite([]string{"cycle", "where", "what", "subnet", "node", "vc", "id"})

	atexit.Register(func() { _ = t.Terminate() })

	return t
}

// Trace writes a record.
func (t *WatchTracer) Trace(rec Record) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.mustWrite([]string{
		strconv.FormatUint(rec.Cycle, 10),
		rec.Where,
		rec.What,
		strconv.Itoa(rec.Subnet),
		strconv.Itoa(rec.Node),
		strconv.Itoa(rec.VC),
		rec.ID,
	})
}

func (t *WatchTracer) mustWrite(fields []string) {
	if err := t.writer.Write(fields); err != nil {
		panic(err)
	}
}

// Flush writes the buffered lines.
func (t *WatchTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.writer.Flush()

	return t.writer.Error()
}

// Terminate flushes the output and closes it when it can be closed. Calling
// it more than once is harmless.
func (t *WatchTracer) Terminate() error {
	if err := t.Flush(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if c, ok := t.out.(io.Closer); ok {
		t.out = nil
		return c.Close()
	}

	return nil
}
