// Package id generates identifiers for flits, packets and recorded entries.
package id

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator can generate IDs.
type IDGenerator interface {
	Generate() string
}

var (
	generatorMu sync.Mutex
	generator   IDGenerator
)

// NewIDGenerator returns a generator that produces increasing decimal IDs.
// Runs that use it are reproducible.
func NewIDGenerator() IDGenerator {
	return &sequentialIDGenerator{}
}

// NewParallelIDGenerator returns a generator that produces globally unique IDs
// without coordination. Use it when several simulations share a process.
func NewParallelIDGenerator() IDGenerator {
	return parallelIDGenerator{}
}

// Default returns the process-wide generator, creating a sequential one on
// first use.
func Default() IDGenerator {
	generatorMu.Lock()
	defer generatorMu.Unlock()

	if generator == nil {
		generator = NewIDGenerator()
	}

	return generator
}

// UseParallel switches the process-wide generator to xid based IDs. It must
// be called before the first ID is generated.
func UseParallel() {
	generatorMu.Lock()
	defer generatorMu.Unlock()

	if generator != nil {
		panic("cannot change the ID generator after it has been used")
	}

	generator = NewParallelIDGenerator()
}

// Generate returns a new ID from the process-wide generator.
func Generate() string {
	return Default().Generate()
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)
	return strconv.FormatUint(idNumber, 10)
}

type parallelIDGenerator struct{}

func (g parallelIDGenerator) Generate() string {
	return xid.New().String()
}
