package schedulers

import (
	"fmt"
	"log"
	"sync"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// Schedule validates the request, simulates it under policy and returns the
// complete Gantt chart with per-process metrics. Any error aborts the run and
// no partial schedule is returned. timeQuantum is only read for round robin.
func Schedule(policy core.PolicyKind, request requests.ScheduleRequests, timeQuantum int) (responses.ScheduleResponse, error) {
	log.Println("running", policy, "algorithm with", len(request.Jobs), "jobs")

	descriptors, err := core.Validate(request.Jobs, policy, timeQuantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	events, err := Simulate(descriptors, policy, timeQuantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	segments, err := core.BuildTimeline(events)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	metrics, err := ComputeMetrics(segments, descriptors)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	return generateResponse(policy, timeQuantum, descriptors, segments, metrics), nil
}

// ScheduleAll runs every policy on the same jobs. Each run owns its own state,
// so they execute concurrently.
func ScheduleAll(request requests.ScheduleRequests, timeQuantum int) (responses.CompareResponse, error) {
	results := make([]responses.ScheduleResponse, len(core.Policies))
	errs := make([]error, len(core.Policies))

	var wg sync.WaitGroup
	wg.Add(len(core.Policies))
	for i, policy := range core.Policies {
		go func(i int, policy core.PolicyKind) {
			defer wg.Done()
			results[i], errs[i] = Schedule(policy, request, timeQuantum)
		}(i, policy)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return responses.CompareResponse{}, fmt.Errorf("%s: %w", core.Policies[i], err)
		}
	}
	return responses.CompareResponse{Results: results}, nil
}
