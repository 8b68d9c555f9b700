package model

import "fmt"

// Verdict is the decision taken after a generation transition
type Verdict int

const (
	Continue Verdict = iota
	CapReached
	Extinct
	Stable
)

func (v Verdict) String() string {
	switch v {
	case Continue:
		return "continue"
	case CapReached:
		return "cap reached"
	case Extinct:
		return "extinct"
	case Stable:
		return "stable"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Outcome is a Verdict together with the step it was reached at
type Outcome struct {
	Verdict Verdict
	Step    int
}

// Done reports whether the simulation should halt
func (o Outcome) Done() bool {
	return o.Verdict != Continue
}

// Message is the line printed to the console when the simulation halts
func (o Outcome) Message() string {
	switch o.Verdict {
	case CapReached:
		return fmt.Sprintf("The maximum number of timesteps has been reached: %d time steps", o.Step)
	case Extinct:
		return fmt.Sprintf("All cells have died at time step %d.", o.Step)
	case Stable:
		return "The cell configuration has repeated. Since no more change will occur, we stop the continuation of the game."
	default:
		return ""
	}
}

// ClassifyTermination decides whether to stop after step stepIndex produced
// current from previous. The cap is checked first, then extinction, then a
// period-1 repeat. A maxSteps of zero disables the cap.
func ClassifyTermination(previous, current *Generation, stepIndex, maxSteps int) Outcome {
	switch {
	case maxSteps > 0 && stepIndex >= maxSteps:
		return Outcome{Verdict: CapReached, Step: maxSteps}
	case current.IsEmpty():
		return Outcome{Verdict: Extinct, Step: stepIndex}
	case previous != nil && current.Equal(previous):
		return Outcome{Verdict: Stable, Step: stepIndex}
	}
	return Outcome{Verdict: Continue, Step: stepIndex}
}
