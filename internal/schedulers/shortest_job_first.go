package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// selectShortestJob picks the smallest burst among arrived processes once the
// CPU is free. A running job is never interrupted.
func selectShortestJob(ready []*core.RuntimeProcess, running *core.RuntimeProcess) Decision {
	if running != nil {
		return continueRunning()
	}
	if len(ready) == 0 {
		return idle()
	}

	shortest := ready[0]
	for _, p := range ready[1:] {
		if shorterJob(p, shortest) {
			shortest = p
		}
	}
	return switchTo(shortest)
}

func shorterJob(a, b *core.RuntimeProcess) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	return a.ArrivedBefore(b)
}

func ScheduleShortestJobFirst(request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return Schedule(core.ShortestJobFirst, request, 0)
}
