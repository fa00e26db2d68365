package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// selectFirstComeFirstServe runs the head of the arrival-ordered ready queue
// and never preempts.
func selectFirstComeFirstServe(ready []*core.RuntimeProcess, running *core.RuntimeProcess) Decision {
	if running != nil {
		return continueRunning()
	}
	if len(ready) == 0 {
		return idle()
	}
	return switchTo(ready[0])
}

func ScheduleFirstComeFirstServe(request requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	return Schedule(core.FirstComeFirstServe, request, 0)
}
