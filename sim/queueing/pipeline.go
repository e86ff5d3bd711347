package queueing

import (
	"github.com/sarchlab/nocif/sim/hooking"
	"github.com/sarchlab/nocif/sim/naming"
)

// Pipeline delays elements by a fixed number of cycles before placing them
// into a post-pipeline buffer.
type Pipeline[T any] interface {
	naming.Named
	hooking.Hookable

	// Tick moves elements in the pipeline forward.
	Tick() (madeProgress bool)

	// CanAccept checks if the pipeline can accept a new element.
	CanAccept() bool

	// Accept adds an element to the pipeline. If the first pipeline stage is
	// currently occupied, this function panics.
	Accept(elem T)

	// Len returns the number of elements inside the stages.
	Len() int

	// Clear discards all the items that are currently in the pipeline.
	Clear()
}

type pipelineStage[T any] struct {
	elem      T
	occupied  bool
	cycleLeft int
}

type pipelineImpl[T any] struct {
	hooking.HookableBase

	name            string
	stages          [][]pipelineStage[T]
	width           int
	numStage        int
	cyclePerStage   int
	postPipelineBuf Buffer[T]
}

func (p *pipelineImpl[T]) Name() string {
	return p.name
}

// Clear discards all the items in the pipeline.
func (p *pipelineImpl[T]) Clear() {
	p.stages = make([][]pipelineStage[T], p.width)
	for i := 0; i < p.width; i++ {
		p.stages[i] = make([]pipelineStage[T], p.numStage)
	}
}

func (p *pipelineImpl[T]) Len() int {
	n := 0

	for lane := range p.stages {
		for i := range p.stages[lane] {
			if p.stages[lane][i].occupied {
				n++
			}
		}
	}

	return n
}

// Tick moves elements in the pipeline forward.
func (p *pipelineImpl[T]) Tick() (madeProgress bool) {
	for lane := 0; lane < p.width; lane++ {
		for i := p.numStage - 1; i >= 0; i-- {
			stage := &p.stages[lane][i]

			if !stage.occupied {
				continue
			}

			if stage.cycleLeft > 0 {
				stage.cycleLeft--
				madeProgress = true

				continue
			}

			if i == p.numStage-1 {
				madeProgress =
					p.tryMoveToPostPipelineBuffer(stage) || madeProgress
			} else {
				madeProgress = p.tryMoveToNextStage(lane, i) || madeProgress
			}
		}
	}

	return madeProgress
}

func (p *pipelineImpl[T]) tryMoveToPostPipelineBuffer(
	stage *pipelineStage[T],
) (succeed bool) {
	if !p.postPipelineBuf.CanPush() {
		return false
	}

	p.postPipelineBuf.Push(stage.elem)
	*stage = pipelineStage[T]{}

	return true
}

func (p *pipelineImpl[T]) tryMoveToNextStage(
	lane int,
	stageNum int,
) (succeed bool) {
	stage := &p.stages[lane][stageNum]
	nextStage := &p.stages[lane][stageNum+1]

	if nextStage.occupied {
		return false
	}

	nextStage.elem = stage.elem
	nextStage.occupied = true
	nextStage.cycleLeft = p.cyclePerStage - 1
	*stage = pipelineStage[T]{}

	return true
}

// CanAccept checks if the pipeline can accept a new element.
func (p *pipelineImpl[T]) CanAccept() bool {
	if p.numStage == 0 {
		return p.postPipelineBuf.CanPush()
	}

	for lane := 0; lane < p.width; lane++ {
		if !p.stages[lane][0].occupied {
			return true
		}
	}

	return false
}

// Accept adds an element to the pipeline. If the first pipeline stage is
// currently occupied, this function panics.
func (p *pipelineImpl[T]) Accept(elem T) {
	if p.numStage == 0 {
		p.postPipelineBuf.Push(elem)
		return
	}

	for lane := 0; lane < p.width; lane++ {
		if p.stages[lane][0].occupied {
			continue
		}

		p.stages[lane][0] = pipelineStage[T]{
			elem:      elem,
			occupied:  true,
			cycleLeft: p.cyclePerStage - 1,
		}

		return
	}

	panic("pipeline is not free. Use CanAccept before accepting.")
}

// A PipelineBuilder can build pipelines.
type PipelineBuilder[T any] struct {
	width           int
	numStage        int
	cyclePerStage   int
	postPipelineBuf Buffer[T]
}

// MakePipelineBuilder creates a default builder
func MakePipelineBuilder[T any]() PipelineBuilder[T] {
	return PipelineBuilder[T]{
		width:         1,
		numStage:      5,
		cyclePerStage: 1,
	}
}

// WithPipelineWidth sets the number of lanes in the pipeline. If width=4,
// 4 elements can be in the same stage at the same time.
func (b PipelineBuilder[T]) WithPipelineWidth(n int) PipelineBuilder[T] {
	b.width = n
	return b
}

// WithNumStage sets the number of pipeline stages
func (b PipelineBuilder[T]) WithNumStage(n int) PipelineBuilder[T] {
	b.numStage = n
	return b
}

// WithCyclePerStage sets the the number of cycles that each element needs to
// stay in each stage.
func (b PipelineBuilder[T]) WithCyclePerStage(n int) PipelineBuilder[T] {
	b.cyclePerStage = n
	return b
}

// WithPostPipelineBuffer sets the buffer that the elements can be pushed to
// after passing through the pipeline.
func (b PipelineBuilder[T]) WithPostPipelineBuffer(
	buf Buffer[T],
) PipelineBuilder[T] {
	b.postPipelineBuf = buf
	return b
}

// Build builds a pipeline.
func (b PipelineBuilder[T]) Build(name string) Pipeline[T] {
	naming.NameMustBeValid(name)

	if b.postPipelineBuf == nil {
		panic("post pipeline buffer must be given")
	}

	p := &pipelineImpl[T]{
		name:            name,
		width:           b.width,
		numStage:        b.numStage,
		cyclePerStage:   b.cyclePerStage,
		postPipelineBuf: b.postPipelineBuf,
	}

	p.Clear()

	return p
}
