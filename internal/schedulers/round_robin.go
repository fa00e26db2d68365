package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// selectRoundRobin always serves the head of the FIFO ready queue. The driver
// re-enqueues a process whose quantum expired after admitting the processes
// that arrived during its slice.
func selectRoundRobin(ready []*core.RuntimeProcess, running *core.RuntimeProcess) Decision {
	if running != nil {
		return continueRunning()
	}
	if len(ready) == 0 {
		return idle()
	}
	return switchTo(ready[0])
}

func ScheduleRoundRobin(request requests.ScheduleRequests, timeQuantum int) (responses.ScheduleResponse, error) {
	return Schedule(core.RoundRobin, request, timeQuantum)
}
