package standalone

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Names of the statistics that the fabric keeps.
const (
	StatLatency       = "latency"
	StatInjectedFlits = "injected_flits"
	StatEjectedFlits  = "ejected_flits"
)

// Stat is a series of samples with summary values.
type Stat struct {
	name    string
	samples []float64

	mean, stdDev float64
	dirty        bool
}

// NewStat creates an empty statistic.
func NewStat(name string) *Stat {
	return &Stat{name: name}
}

// Name returns the name of the statistic.
func (s *Stat) Name() string {
	return s.name
}

// AddSample records one sample.
func (s *Stat) AddSample(v float64) {
	s.samples = append(s.samples, v)
	s.dirty = true
}

// NumSamples returns the number of samples recorded.
func (s *Stat) NumSamples() int {
	return len(s.samples)
}

// Sum returns the total of all samples.
func (s *Stat) Sum() float64 {
	return floats.Sum(s.samples)
}

// Average returns the mean of the samples, or 0 without samples.
func (s *Stat) Average() float64 {
	s.update()
	return s.mean
}

// StdDev returns the sample standard deviation, or 0 with fewer than two
// samples.
func (s *Stat) StdDev() float64 {
	s.update()
	return s.stdDev
}

// Max returns the largest sample, or 0 without samples.
func (s *Stat) Max() float64 {
	if len(s.samples) == 0 {
		return 0
	}

	return floats.Max(s.samples)
}

// Clear discards all samples.
func (s *Stat) Clear() {
	s.samples = nil
	s.mean, s.stdDev = 0, 0
	s.dirty = false
}

func (s *Stat) update() {
	if !s.dirty {
		return
	}

	s.dirty = false

	switch len(s.samples) {
	case 0:
		s.mean, s.stdDev = 0, 0
	case 1:
		s.mean, s.stdDev = s.samples[0], 0
	default:
		s.mean, s.stdDev = stat.MeanStdDev(s.samples, nil)
	}
}
