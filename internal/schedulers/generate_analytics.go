package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// ComputeMetrics derives completion, turnaround, waiting and response time for
// every descriptor from the final timeline.
func ComputeMetrics(segments []core.Segment, descriptors []core.ProcessDescriptor) (map[string]core.Metrics, error) {
	known := make(map[string]struct{}, len(descriptors))
	for _, d := range descriptors {
		known[d.Name] = struct{}{}
	}

	firstStart := make(map[string]int, len(descriptors))
	lastEnd := make(map[string]int, len(descriptors))
	for _, s := range segments {
		if s.Idle() {
			continue
		}
		if _, ok := known[s.Process]; !ok {
			return nil, fmt.Errorf("%w: %q in segment [%d,%d)", core.ErrUnknownProcess, s.Process, s.Start, s.End)
		}
		if _, ok := firstStart[s.Process]; !ok {
			firstStart[s.Process] = s.Start
		}
		lastEnd[s.Process] = s.End
	}

	metrics := make(map[string]core.Metrics, len(descriptors))
	for _, d := range descriptors {
		start, ok := firstStart[d.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q never ran", core.ErrMalformedTimeline, d.Name)
		}
		turnaround := lastEnd[d.Name] - d.ArrivalTime
		metrics[d.Name] = core.Metrics{
			CompletionTime: lastEnd[d.Name],
			TurnaroundTime: turnaround,
			WaitingTime:    turnaround - d.BurstTime,
			ResponseTime:   start - d.ArrivalTime,
		}
	}
	return metrics, nil
}

func generateResponse(policy core.PolicyKind, timeQuantum int, descriptors []core.ProcessDescriptor,
	segments []core.Segment, metrics map[string]core.Metrics) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(descriptors))
	for _, d := range descriptors {
		proccessDetails = append(proccessDetails, generateProcessDetails(d, metrics[d.Name]))
	}
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	gantt := make([]responses.SegmentResponse, 0, len(segments))
	for _, s := range segments {
		gantt = append(gantt, responses.SegmentResponse{
			Process: s.Process,
			Start:   s.Start,
			End:     s.End,
			Idle:    s.Idle(),
		})
	}

	cpuMetric := core.MeasureCpu(segments)
	var response = responses.ScheduleResponse{
		Policy:                policy.String(),
		TotalTime:             float64(cpuMetric.TotalTime),
		IdleTime:              float64(cpuMetric.IdleTime),
		CpuUtilization:        cpuMetric.Utilization(),
		CpuThroughput:         cpuMetric.Throughput(len(descriptors)),
		ContextSwitches:       cpuMetric.ContextSwitches,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Gantt:                 gantt,
		Details:               proccessDetails,
	}
	if policy == core.RoundRobin {
		response.TimeQuantum = timeQuantum
	}
	return response
}

func generateProcessDetails(d core.ProcessDescriptor, m core.Metrics) responses.ProcessResponse {
	details := responses.ProcessResponse{
		Name:           d.Name,
		ArrivalTime:    d.ArrivalTime,
		BurstTime:      d.BurstTime,
		CompletionTime: m.CompletionTime,
		ResponseTime:   float64(m.ResponseTime),
		TurnAroundTime: float64(m.TurnaroundTime),
		WaitingTime:    float64(m.WaitingTime),
	}
	if d.HasPriority {
		priority := d.Priority
		details.Priority = &priority
	}
	return details
}
