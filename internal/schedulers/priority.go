package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// selectHighestPriority re-evaluates every time unit. The running process
// keeps the CPU unless a ready process strictly beats it on
// (priority, arrival, input order).
func selectHighestPriority(ready []*core.RuntimeProcess, running *core.RuntimeProcess) Decision {
	best := running
	for _, p := range ready {
		if best == nil || higherPriority(p, best) {
			best = p
		}
	}

	switch {
	case best == nil:
		return idle()
	case best == running:
		return continueRunning()
	}
	return switchTo(best)
}

// lower number means higher priority
func higherPriority(a, b *core.RuntimeProcess) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.ArrivedBefore(b)
}

func SchedulePriority(request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return Schedule(core.Priority, request, 0)
}
