package schedulers

import "cpu-scheduler/internal/core"

type DecisionKind int

const (
	ContinueRunning DecisionKind = iota
	Switch
	Idle
)

func (k DecisionKind) String() string {
	switch k {
	case ContinueRunning:
		return "continue"
	case Switch:
		return "switch"
	case Idle:
		return "idle"
	}
	return "unknown"
}

// Decision is what a policy wants the CPU to do at a decision point.
// Process is set only for Switch.
type Decision struct {
	Kind    DecisionKind
	Process *core.RuntimeProcess
}

func continueRunning() Decision { return Decision{Kind: ContinueRunning} }

func switchTo(p *core.RuntimeProcess) Decision { return Decision{Kind: Switch, Process: p} }

func idle() Decision { return Decision{Kind: Idle} }

// selectNext asks the given policy what to run. ready holds every arrived,
// unfinished process except the running one, in admission order.
func selectNext(policy core.PolicyKind, ready []*core.RuntimeProcess, running *core.RuntimeProcess) Decision {
	switch policy {
	case core.FirstComeFirstServe:
		return selectFirstComeFirstServe(ready, running)
	case core.ShortestJobFirst:
		return selectShortestJob(ready, running)
	case core.Priority:
		return selectHighestPriority(ready, running)
	case core.RoundRobin:
		return selectRoundRobin(ready, running)
	}
	return idle()
}

// sliceLength is how long the running process keeps the CPU before the next
// decision point. untilArrival is the distance to the next pending arrival, 0
// when none is left, and alone reports an empty ready pool. Priority decisions
// can only change when a process arrives, and a lone round robin process keeps
// winning its quanta until someone arrives strictly inside one.
func sliceLength(policy core.PolicyKind, running *core.RuntimeProcess, timeQuantum, untilArrival int, alone bool) int {
	remaining := running.RemainingTime
	switch policy {
	case core.Priority:
		if untilArrival > 0 && untilArrival < remaining {
			return untilArrival
		}
		return remaining
	case core.RoundRobin:
		if !alone {
			if remaining < timeQuantum {
				return remaining
			}
			return timeQuantum
		}
		if untilArrival == 0 {
			return remaining
		}
		// whole quanta before the arrival, plus the quantum it lands in
		// (or the next one when it lands on a boundary)
		quanta := untilArrival / timeQuantum * timeQuantum
		if remaining-quanta <= timeQuantum {
			return remaining
		}
		return quanta + timeQuantum
	}
	return remaining
}

func isKnownPolicy(policy core.PolicyKind) bool {
	for _, p := range core.Policies {
		if p == policy {
			return true
		}
	}
	return false
}
