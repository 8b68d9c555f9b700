package model

import (
	"context"

	"github.com/sheikhrachel/sparse-gol/utils"
)

// Transition summarises one generation step
type Transition struct {
	Step       int
	Population int
	Births     int
	Deaths     int
	Outcome    Outcome
}

// Simulation owns the current generation and the one before it
type Simulation struct {
	config   utils.Config
	pool     *GenerationPool
	current  *Generation
	previous *Generation
	step     int
	outcome  Outcome
}

// NewSimulation starts a simulation from initial. The initial generation is
// owned by the simulation from now on.
func NewSimulation(config utils.Config, initial *Generation) *Simulation {
	var pool *GenerationPool
	if config.UseMemoryPool {
		pool = NewGenerationPool()
	}
	if initial == nil {
		initial = NewGeneration()
	}
	return &Simulation{config: config, pool: pool, current: initial}
}

// Current returns the live generation
func (s *Simulation) Current() *Generation { return s.current }

// StepIndex returns the number of transitions performed so far
func (s *Simulation) StepIndex() int { return s.step }

// Outcome returns the verdict of the last transition
func (s *Simulation) Outcome() Outcome { return s.outcome }

// Advance performs one transition and classifies it. Calling Advance after
// the simulation halted is a no-op returning the final transition.
func (s *Simulation) Advance() Transition {
	if s.outcome.Done() {
		return s.transition(s.previous)
	}

	next := s.current.NextGeneration(s.config, s.pool)
	s.step++

	// only one generation of history is kept
	GenerationToPool(s.previous, s.pool)
	s.previous, s.current = s.current, next
	s.outcome = ClassifyTermination(s.previous, s.current, s.step, s.config.MaxSteps)

	return s.transition(s.previous)
}

// Run advances until the simulation halts or ctx is cancelled. Cancellation
// is observed between generations.
func (s *Simulation) Run(ctx context.Context) (Outcome, error) {
	for !s.outcome.Done() {
		if err := ctx.Err(); err != nil {
			return s.outcome, err
		}
		s.Advance()
	}
	return s.outcome, nil
}

func (s *Simulation) transition(previous *Generation) Transition {
	t := Transition{
		Step:       s.step,
		Population: s.current.Len(),
		Outcome:    s.outcome,
	}
	for c := range s.current.cellsOrNil() {
		if !previous.Contains(c) {
			t.Births++
		}
	}
	for c := range previous.cellsOrNil() {
		if !s.current.Contains(c) {
			t.Deaths++
		}
	}
	return t
}
