// Package config holds the parameters shared by the network interface and
// the fabric it serves. A Config is built once at startup and treated as
// immutable afterwards.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/nocif/noc/messaging"
)

// DefaultInputBufferSize is the ingress queue capacity, in flits, used when
// the configuration does not set one.
const DefaultInputBufferSize = 9

// Config describes the network and the buffering at its interfaces.
type Config struct {
	Subnets  int `yaml:"subnets"`
	Nodes    int `yaml:"nodes"`
	FlitSize int `yaml:"flit_size"`
	NumVCs   int `yaml:"num_vcs"`

	// VCBufSize is the per-VC router buffer depth. The ejection buffer falls
	// back to it.
	VCBufSize int `yaml:"vc_buf_size"`

	EjectionBufferSize int `yaml:"ejection_buffer_size"`
	InputBufferSize    int `yaml:"input_buffer_size"`
	BoundaryBufferSize int `yaml:"boundary_buffer_size"`
	HeaderSize         int `yaml:"header_size"`

	// WatchOut is the path of the diagnostic trace sink. Empty or "-" turns
	// the sink off.
	WatchOut      string `yaml:"watch_out"`
	PrintActivity bool   `yaml:"print_activity"`

	// VC ranges are inclusive. When every range is [0, 0] the ranges count
	// as unset and every packet type may use every VC, so a configuration
	// cannot pin all types to VC 0 unless NumVCs is 1.
	ReadRequestBeginVC  int `yaml:"read_request_begin_vc"`
	ReadRequestEndVC    int `yaml:"read_request_end_vc"`
	WriteRequestBeginVC int `yaml:"write_request_begin_vc"`
	WriteRequestEndVC   int `yaml:"write_request_end_vc"`
	ReadReplyBeginVC    int `yaml:"read_reply_begin_vc"`
	ReadReplyEndVC      int `yaml:"read_reply_end_vc"`
	WriteReplyBeginVC   int `yaml:"write_reply_begin_vc"`
	WriteReplyEndVC     int `yaml:"write_reply_end_vc"`

	// Topology parameters are passed through to the fabric.
	K               int    `yaml:"k"`
	N               int    `yaml:"n"`
	C               int    `yaml:"c"`
	RoutingFunction string `yaml:"routing_function"`

	// FabricLatency is the flit traversal latency, in cycles, of the
	// standalone loopback fabric.
	FabricLatency int `yaml:"fabric_latency"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// WithDefaults returns a copy of c where unset optional parameters take their
// default values.
func (c Config) WithDefaults() Config {
	if c.EjectionBufferSize == 0 {
		c.EjectionBufferSize = c.VCBufSize
	}

	if c.InputBufferSize == 0 {
		c.InputBufferSize = DefaultInputBufferSize
	}

	if c.FabricLatency == 0 {
		c.FabricLatency = 1
	}

	if c.WatchOut == "-" {
		c.WatchOut = ""
	}

	if c.NumVCs > 0 && !c.hasVCRanges() {
		last := c.NumVCs - 1
		c.ReadRequestEndVC = last
		c.WriteRequestEndVC = last
		c.ReadReplyEndVC = last
		c.WriteReplyEndVC = last
	}

	return c
}

func (c Config) hasVCRanges() bool {
	for _, r := range c.vcRanges() {
		if r.begin != 0 || r.end != 0 {
			return true
		}
	}

	return false
}

type vcRange struct {
	name       string
	begin, end int
}

func (c Config) vcRanges() []vcRange {
	return []vcRange{
		{"read_request", c.ReadRequestBeginVC, c.ReadRequestEndVC},
		{"write_request", c.WriteRequestBeginVC, c.WriteRequestEndVC},
		{"read_reply", c.ReadReplyBeginVC, c.ReadReplyEndVC},
		{"write_reply", c.WriteReplyBeginVC, c.WriteReplyEndVC},
	}
}

// Validate reports the first parameter that makes the configuration unusable.
func (c Config) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"subnets", c.Subnets},
		{"nodes", c.Nodes},
		{"flit_size", c.FlitSize},
		{"num_vcs", c.NumVCs},
		{"ejection_buffer_size", c.EjectionBufferSize},
		{"input_buffer_size", c.InputBufferSize},
		{"boundary_buffer_size", c.BoundaryBufferSize},
	}

	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d",
				ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.HeaderSize < 0 {
		return fmt.Errorf("%w: header_size must not be negative, got %d",
			ErrInvalidConfig, c.HeaderSize)
	}

	if c.FabricLatency < 0 {
		return fmt.Errorf("%w: fabric_latency must not be negative, got %d",
			ErrInvalidConfig, c.FabricLatency)
	}

	for _, r := range c.vcRanges() {
		if r.begin < 0 || r.end >= c.NumVCs || r.begin > r.end {
			return fmt.Errorf("%w: %s vc range [%d, %d] outside [0, %d]",
				ErrInvalidConfig, r.name, r.begin, r.end, c.NumVCs-1)
		}
	}

	return nil
}

// VCRange returns the inclusive range of virtual channels that packets of
// type t may use. PacketTypeAny may use every VC.
func (c Config) VCRange(t messaging.PacketType) (begin, end int) {
	switch t {
	case messaging.PacketTypeRead:
		return c.ReadRequestBeginVC, c.ReadRequestEndVC
	case messaging.PacketTypeWrite:
		return c.WriteRequestBeginVC, c.WriteRequestEndVC
	case messaging.PacketTypeReadReply:
		return c.ReadReplyBeginVC, c.ReadReplyEndVC
	case messaging.PacketTypeWriteReply:
		return c.WriteReplyBeginVC, c.WriteReplyEndVC
	default:
		return 0, c.NumVCs - 1
	}
}

// TraceEnabled tells whether a diagnostic trace sink is configured.
func (c Config) TraceEnabled() bool {
	return c.WatchOut != "" && c.WatchOut != "-"
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
