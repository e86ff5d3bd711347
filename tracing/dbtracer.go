package tracing

import (
	"sync"

	"github.com/sarchlab/nocif/datarecording"
	"github.com/tebeka/atexit"
)

// TableName is the table that DBTracer writes into.
const TableName = "nif_trace"

// DBTracer stores records into a database through a DataRecorder.
type DBTracer struct {
	mu         sync.Mutex
	backend    datarecording.DataRecorder
	terminated bool
}

// NewDBTracer creates a new DBTracer.
func NewDBTracer(dataRecorder datarecording.DataRecorder) *DBTracer {
	dataRecorder.CreateTable(TableName, Record{})

	t := &DBTracer{
		backend: dataRecorder,
	}

	atexit.Register(func() { _ = t.Terminate() })

	return t
}

// Trace buffers a record. Records after Terminate are dropped.
func (t *DBTracer) Trace(rec Record) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.terminated {
		return
	}

	t.backend.InsertData(TableName, rec)
}

// Terminate flushes the records and closes the database.
func (t *DBTracer) Terminate() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.terminated {
		return nil
	}

	t.terminated = true

	return t.backend.Close()
}
