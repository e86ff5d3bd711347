package nif

import (
	"fmt"
	"log"

	"github.com/sarchlab/nocif/noc/messaging"
)

// ViolationKind names the contract that a caller or the fabric broke.
type ViolationKind int

// The consistency violations the network interface detects.
const (
	EjectionOverflow ViolationKind = iota
	BoundaryOverflow
	DestinationMismatch
	EmptyBoundaryAccess
	IndexOutOfRange
	NilFlit
)

var violationNames = map[ViolationKind]string{
	EjectionOverflow:    "ejection buffer overflow",
	BoundaryOverflow:    "boundary buffer overflow",
	DestinationMismatch: "head flit destination mismatch",
	EmptyBoundaryAccess: "access to empty boundary buffer",
	IndexOutOfRange:     "index out of range",
	NilFlit:             "nil flit",
}

func (k ViolationKind) String() string {
	if name, ok := violationNames[k]; ok {
		return name
	}

	return fmt.Sprintf("ViolationKind(%d)", int(k))
}

// A ConsistencyError reports a broken contract between the network interface
// and the fabric or the consumer. It is never returned. The interface panics
// with it, because continuing would hide a defect upstream.
type ConsistencyError struct {
	Kind     ViolationKind
	Location messaging.Location
	Cycle    uint64
	Detail   string
}

func (e *ConsistencyError) Error() string {
	msg := fmt.Sprintf("cycle %d, %s: %s", e.Cycle, e.Location, e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

// fatal logs the violation and panics with it.
func fatal(err *ConsistencyError) {
	log.Print(err.Error())
	panic(err)
}
