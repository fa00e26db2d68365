package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

// simulation is the state of one run. It is owned by a single call to
// Simulate and never shared.
type simulation struct {
	policy      core.PolicyKind
	timeQuantum int

	processes []*core.RuntimeProcess // sorted by arrival
	next      int                    // index of the first unarrived process
	ready     []*core.RuntimeProcess
	running   *core.RuntimeProcess
	completed int

	clock  int
	events []core.Event
}

// Simulate drives a virtual clock from 0 until every process completes and
// returns the raw execution events, including idle gaps. descriptors must come
// from core.Validate.
func Simulate(descriptors []core.ProcessDescriptor, policy core.PolicyKind, timeQuantum int) ([]core.Event, error) {
	if !isKnownPolicy(policy) {
		return nil, fmt.Errorf("unknown scheduling policy %v", policy)
	}
	if policy == core.RoundRobin && timeQuantum <= 0 {
		return nil, fmt.Errorf("%w: time quantum must be positive, got %d", core.ErrInvalidField, timeQuantum)
	}

	s := &simulation{
		policy:      policy,
		timeQuantum: timeQuantum,
		processes:   core.NewRuntimeProcesses(descriptors),
	}
	for s.completed < len(s.processes) {
		s.admit(s.clock)

		decision := selectNext(s.policy, s.ready, s.running)
		switch decision.Kind {
		case Idle:
			if err := s.skipToNextArrival(); err != nil {
				return nil, err
			}
			continue
		case Switch:
			s.dispatch(decision.Process)
		}
		s.execute()
	}
	return s.events, nil
}

// admit moves every unarrived process with arrival time <= until into the
// ready pool, in arrival order.
func (s *simulation) admit(until int) {
	for s.next < len(s.processes) && s.processes[s.next].ArrivalTime <= until {
		p := s.processes[s.next]
		p.Phase = core.Ready
		s.ready = append(s.ready, p)
		s.next++
	}
}

func (s *simulation) skipToNextArrival() error {
	if s.running != nil || len(s.ready) > 0 || s.next >= len(s.processes) {
		return fmt.Errorf("%w: at t=%d with %d of %d processes completed",
			core.ErrDeadlock, s.clock, s.completed, len(s.processes))
	}
	arrival := s.processes[s.next].ArrivalTime
	s.emit(core.IdleProcess, arrival)
	return nil
}

// dispatch gives the CPU to p. A preempted process goes back to the ready
// pool with its remaining time intact.
func (s *simulation) dispatch(p *core.RuntimeProcess) {
	if s.running != nil && s.running != p {
		s.running.Phase = core.Ready
		s.ready = append(s.ready, s.running)
	}
	s.removeReady(p)
	p.Phase = core.Running
	s.running = p
}

func (s *simulation) execute() {
	p := s.running
	s.emit(p.Name, s.clock+sliceLength(s.policy, p, s.timeQuantum, s.untilNextArrival(), len(s.ready) == 0))

	if p.RemainingTime == 0 {
		p.Phase = core.Completed
		s.running = nil
		s.completed++
		return
	}
	if s.policy == core.RoundRobin {
		// arrivals strictly inside the slice queue ahead of the expired process
		s.admit(s.clock - 1)
		p.Phase = core.Ready
		s.ready = append(s.ready, p)
		s.running = nil
	}
}

// untilNextArrival is the time left before the next unarrived process shows
// up, or 0 when every process has arrived.
func (s *simulation) untilNextArrival() int {
	if s.next >= len(s.processes) {
		return 0
	}
	return s.processes[s.next].ArrivalTime - s.clock
}

// emit records [clock, end) for subject and advances the clock to end. A slice
// continuing the previous event of the same subject extends it.
func (s *simulation) emit(subject string, end int) {
	if subject != core.IdleProcess {
		s.running.RemainingTime -= end - s.clock
	}
	if n := len(s.events); n > 0 && s.events[n-1].Process == subject && s.events[n-1].End == s.clock {
		s.events[n-1].End = end
	} else {
		s.events = append(s.events, core.Event{Process: subject, Start: s.clock, End: end})
	}
	s.clock = end
}

func (s *simulation) removeReady(p *core.RuntimeProcess) {
	for i, r := range s.ready {
		if r == p {
			s.ready = append(s.ready[:i], s.ready[i+1:]...)
			return
		}
	}
}
