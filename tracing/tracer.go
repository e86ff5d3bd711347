// Package tracing records the activity of network interfaces as a stream of
// events, either as text or into a database.
package tracing

import (
	"fmt"
	"os"
	"strings"

	"github.com/sarchlab/nocif/datarecording"
)

// A Record is one traced event.
type Record struct {
	Cycle  uint64
	Where  string
	What   string
	Subnet int
	Node   int
	VC     int
	ID     string
}

// A Tracer consumes trace records.
type Tracer interface {
	Trace(rec Record)

	// Terminate writes out everything that is still buffered.
	Terminate() error
}

// Traceable items carry an ID that identifies them in a trace.
type Traceable interface {
	TraceID() string
}

// NewTracerFromPath creates the tracer selected by a watch_out setting. An
// empty path or "-" disables tracing and returns nil. Paths that end with
// ".sqlite3" produce a DBTracer. Any other path is a text trace file.
func NewTracerFromPath(path string) (Tracer, error) {
	if path == "" || path == "-" {
		return nil, nil
	}

	if strings.HasSuffix(path, datarecording.FileSuffix) {
		w := datarecording.NewSQLiteWriter(path)
		if err := w.Init(); err != nil {
			return nil, fmt.Errorf("creating trace database: %w", err)
		}

		return NewDBTracer(w), nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}

	return NewWatchTracer(f), nil
}
