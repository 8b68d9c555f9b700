package model

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/utils"
)

func mustPattern(t *testing.T, name string) *Generation {
	t.Helper()
	g, err := Pattern(name, 0, 0)
	if err != nil {
		t.Fatalf("Pattern(%q): %v", name, err)
	}
	return g
}

func TestSimulationOutcomes(t *testing.T) {
	tests := []struct {
		pattern  string
		maxSteps int
		want     Outcome
	}{
		{"block", 200, Outcome{Stable, 1}},
		{"beehive", 200, Outcome{Stable, 1}},
		{"blinker", 6, Outcome{CapReached, 6}},
		{"toad", 9, Outcome{CapReached, 9}},
		{"diehard", 200, Outcome{Extinct, 130}},
	}

	for _, pooled := range []bool{false, true} {
		for _, tt := range tests {
			config := utils.Config{MaxSteps: tt.maxSteps, UseMemoryPool: pooled}
			sim := NewSimulation(config, mustPattern(t, tt.pattern))
			got, err := sim.Run(context.Background())
			if err != nil {
				t.Fatalf("%s: Run: %v", tt.pattern, err)
			}
			if got != tt.want {
				t.Fatalf("%s (pool=%v): outcome %+v, want %+v", tt.pattern, pooled, got, tt.want)
			}
			if sim.StepIndex() != tt.want.Step {
				t.Fatalf("%s: StepIndex = %d, want %d", tt.pattern, sim.StepIndex(), tt.want.Step)
			}
		}
	}
}

func TestSimulationTransitionCounts(t *testing.T) {
	sim := NewSimulation(utils.Config{MaxSteps: 10}, mustPattern(t, "blinker"))

	tr := sim.Advance()
	if tr.Step != 1 || tr.Population != 3 || tr.Births != 2 || tr.Deaths != 2 {
		t.Fatalf("first transition = %+v", tr)
	}
	if tr.Outcome.Done() {
		t.Fatalf("blinker halted after one step: %v", tr.Outcome.Verdict)
	}
}

func TestSimulationAdvanceAfterHalt(t *testing.T) {
	sim := NewSimulation(utils.Config{MaxSteps: 10}, MustFromCells(Cell{0, 0}))

	first := sim.Advance()
	if first.Outcome != (Outcome{Extinct, 1}) || first.Deaths != 1 {
		t.Fatalf("first transition = %+v", first)
	}
	if again := sim.Advance(); again != first || sim.StepIndex() != 1 {
		t.Fatalf("advance after halt = %+v, step %d", again, sim.StepIndex())
	}
}

func TestSimulationRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := NewSimulation(utils.Config{}, mustPattern(t, "blinker"))
	if _, err := sim.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if sim.StepIndex() != 0 {
		t.Fatalf("cancelled run advanced %d steps", sim.StepIndex())
	}
}

func TestSimulationNilInitial(t *testing.T) {
	sim := NewSimulation(utils.Config{MaxSteps: 5}, nil)
	if tr := sim.Advance(); tr.Outcome != (Outcome{Extinct, 1}) {
		t.Fatalf("empty start outcome = %+v", tr.Outcome)
	}
}
