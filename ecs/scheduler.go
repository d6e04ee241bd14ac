package ecs

import (
	"errors"
	"fmt"
)

// Stage orders systems within a tick. Producers write claims and signals in
// the stages before StageResolve; StageResolve derives outputs once; consumers
// read them in StageConsume. Reading derived state before StageResolve has
// finished is not supported.
type Stage int

const (
	StageInput Stage = iota
	StagePhysics
	StageProduce
	StageResolve
	StageConsume
	stageCount
)

var ErrUnknownStage = errors.New("ecs: unknown stage")

var stageNames = [...]string{
	StageInput:   "input",
	StagePhysics: "physics",
	StageProduce: "produce",
	StageResolve: "resolve",
	StageConsume: "consume",
}

func (s Stage) String() string {
	if s >= 0 && s < stageCount {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Stages lists every stage in execution order.
func Stages() []Stage {
	return []Stage{StageInput, StagePhysics, StageProduce, StageResolve, StageConsume}
}

type Scheduler struct {
	stages [stageCount][]System
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add appends systems to a stage. Nil systems are ignored.
func (s *Scheduler) Add(stage Stage, systems ...System) error {
	if stage < 0 || stage >= stageCount {
		return fmt.Errorf("%w: %d", ErrUnknownStage, int(stage))
	}
	for _, system := range systems {
		if system == nil {
			continue
		}
		s.stages[stage] = append(s.stages[stage], system)
	}
	return nil
}

// MustAdd is Add for wiring code where an unknown stage is a programming error.
func (s *Scheduler) MustAdd(stage Stage, systems ...System) {
	if err := s.Add(stage, systems...); err != nil {
		panic(err)
	}
}

// Update runs one tick: every stage in order, then the end-of-tick flush.
func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	for _, stage := range Stages() {
		for _, system := range s.stages[stage] {
			system.Update(w)
		}
	}
	w.endTick()
}
