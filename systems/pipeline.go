package systems

import (
	"sort"
	"time"
)

// Pipeline runs stages in ascending priority; ties keep insertion order
type Pipeline struct {
	stages []System
}

func NewPipeline(stages ...System) *Pipeline {
	p := &Pipeline{stages: append([]System(nil), stages...)}
	sort.SliceStable(p.stages, func(i, j int) bool {
		return p.stages[i].Priority() < p.stages[j].Priority()
	})
	return p
}

// Run executes one frame of every stage
func (p *Pipeline) Run(w *World, dt time.Duration) {
	for _, s := range p.stages {
		s.Update(w, dt)
	}
}

func (p *Pipeline) Len() int {
	return len(p.stages)
}
