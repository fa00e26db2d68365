package core

import (
	"fmt"
	"math"
	"sort"

	"cpu-scheduler/internal/requests"
)

// Validate checks submitted jobs for the given policy and returns them as
// descriptors sorted by arrival time. The sort is stable, so jobs arriving
// together keep their submission order.
func Validate(jobs []requests.Job, policy PolicyKind, timeQuantum int) ([]ProcessDescriptor, error) {
	if len(jobs) == 0 {
		return nil, ErrEmptyInput
	}
	if policy == RoundRobin && timeQuantum <= 0 {
		return nil, fmt.Errorf("%w: time quantum must be positive, got %d", ErrInvalidField, timeQuantum)
	}

	seen := make(map[string]struct{}, len(jobs))
	totalBurst, latestArrival := 0, 0
	descriptors := make([]ProcessDescriptor, 0, len(jobs))
	for i, job := range jobs {
		if job.Name == "" {
			return nil, fmt.Errorf("%w: job %d has no name", ErrInvalidField, i+1)
		}
		if _, ok := seen[job.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, job.Name)
		}
		seen[job.Name] = struct{}{}

		if job.ArrivalTime < 0 {
			return nil, fmt.Errorf("%w: %q has negative arrival time %d", ErrInvalidField, job.Name, job.ArrivalTime)
		}
		if job.BurstTime <= 0 {
			return nil, fmt.Errorf("%w: %q has non-positive burst time %d", ErrInvalidField, job.Name, job.BurstTime)
		}
		if job.BurstTime > math.MaxInt-totalBurst {
			return nil, fmt.Errorf("%w: total burst time overflows at %q", ErrInvalidField, job.Name)
		}
		totalBurst += job.BurstTime
		latestArrival = max(latestArrival, job.ArrivalTime)
		if policy == Priority && job.Priority == nil {
			return nil, fmt.Errorf("%w: %q has no priority", ErrInvalidField, job.Name)
		}

		d := ProcessDescriptor{
			Name:        job.Name,
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
		}
		if job.Priority != nil {
			d.Priority = *job.Priority
			d.HasPriority = true
		}
		descriptors = append(descriptors, d)
	}

	// The clock can reach the latest arrival plus every burst.
	if latestArrival > math.MaxInt-totalBurst {
		return nil, fmt.Errorf("%w: arrival %d plus total burst %d exceeds the time range", ErrInvalidField, latestArrival, totalBurst)
	}

	sort.SliceStable(descriptors, func(i, j int) bool {
		return descriptors[i].ArrivalTime < descriptors[j].ArrivalTime
	})
	for i := range descriptors {
		descriptors[i].Order = i
	}
	return descriptors, nil
}
