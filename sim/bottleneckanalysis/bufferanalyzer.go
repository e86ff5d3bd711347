// Package bottleneckanalysis finds the buffers that stay full, which usually
// point at the bottleneck of the system.
package bottleneckanalysis

import (
	"fmt"
	"io"
	"sort"
)

// Buffer is what the analyzer watches.
type Buffer interface {
	Name() string
	Size() int
	Capacity() int
}

// BufferAnalyzer samples buffer levels once per cycle and reports the average
// level of each buffer, overall and in the current period.
type BufferAnalyzer struct {
	period uint64

	buffers []*bufferInfo
	byName  map[string]*bufferInfo
	cycles  uint64
}

type bufferInfo struct {
	buf                     Buffer
	levelToCycles           map[int]uint64
	lastPeriodLevelToCycles map[int]uint64
	lastLevel               int
}

func averageLevel(levelToCycles map[int]uint64) float64 {
	sum := 0.0
	cycleSum := 0.0

	for level, cycles := range levelToCycles {
		sum += float64(level) * float64(cycles)
		cycleSum += float64(cycles)
	}

	if cycleSum == 0.0 {
		return 0.0
	}

	return sum / cycleSum
}

// NewBufferAnalyzer creates a new BufferAnalyzer. A period of zero disables
// periodic averages.
func NewBufferAnalyzer(period uint64) *BufferAnalyzer {
	return &BufferAnalyzer{
		period: period,
		byName: make(map[string]*bufferInfo),
	}
}

// AddBuffer starts watching a buffer.
func (b *BufferAnalyzer) AddBuffer(buf Buffer) {
	if _, ok := b.byName[buf.Name()]; ok {
		panic(fmt.Sprintf("buffer %s is already watched", buf.Name()))
	}

	info := &bufferInfo{
		buf:                     buf,
		levelToCycles:           make(map[int]uint64),
		lastPeriodLevelToCycles: make(map[int]uint64),
	}

	b.buffers = append(b.buffers, info)
	b.byName[buf.Name()] = info
}

// Sample records the level of every buffer for one cycle.
func (b *BufferAnalyzer) Sample() {
	if b.period > 0 && b.cycles > 0 && b.cycles%b.period == 0 {
		b.resetPeriod()
	}

	for _, info := range b.buffers {
		level := info.buf.Size()
		info.levelToCycles[level]++
		info.lastPeriodLevelToCycles[level]++
		info.lastLevel = level
	}

	b.cycles++
}

func (b *BufferAnalyzer) resetPeriod() {
	for _, info := range b.buffers {
		info.lastPeriodLevelToCycles = make(map[int]uint64)
	}
}

// AverageLevel returns the average level of a buffer over all samples.
func (b *BufferAnalyzer) AverageLevel(name string) float64 {
	return averageLevel(b.mustFind(name).levelToCycles)
}

// PeriodAverageLevel returns the average level of a buffer in the current
// period.
func (b *BufferAnalyzer) PeriodAverageLevel(name string) float64 {
	if b.period == 0 {
		panic("period mode not enabled")
	}

	return averageLevel(b.mustFind(name).lastPeriodLevelToCycles)
}

func (b *BufferAnalyzer) mustFind(name string) *bufferInfo {
	info, ok := b.byName[name]
	if !ok {
		panic(fmt.Sprintf("buffer %s is not watched", name))
	}

	return info
}

// Report dumps the n buffers with the highest average level, fullest first.
// A non-positive n reports every buffer.
func (b *BufferAnalyzer) Report(w io.Writer, n int) {
	infos := make([]*bufferInfo, len(b.buffers))
	copy(infos, b.buffers)

	sort.SliceStable(infos, func(i, j int) bool {
		return averageLevel(infos[i].levelToCycles) >
			averageLevel(infos[j].levelToCycles)
	})

	if n > 0 && n < len(infos) {
		infos = infos[:n]
	}

	fmt.Fprintln(w, "name, cycles, current, average, period average, capacity")

	for _, info := range infos {
		periodAverage := 0.0
		if b.period > 0 {
			periodAverage = averageLevel(info.lastPeriodLevelToCycles)
		}

		fmt.Fprintf(w, "%s, %d, %d, %.4f, %.4f, %d\n",
			info.buf.Name(),
			b.cycles,
			info.lastLevel,
			averageLevel(info.levelToCycles),
			periodAverage,
			info.buf.Capacity())
	}
}
