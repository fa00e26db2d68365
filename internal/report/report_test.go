package report

import (
	"bytes"
	"testing"

	"cpu-scheduler/internal/responses"

	"github.com/stretchr/testify/assert"
)

func sample() responses.ScheduleResponse {
	priority := 1
	return responses.ScheduleResponse{
		Policy:      "rr",
		TimeQuantum: 2,
		Gantt: []responses.SegmentResponse{
			{Start: 0, End: 1, Idle: true},
			{Process: "P1", Start: 1, End: 3},
			{Process: "P2", Start: 3, End: 4},
		},
		Details: []responses.ProcessResponse{
			{Name: "P1", ArrivalTime: 1, BurstTime: 2, CompletionTime: 3, TurnAroundTime: 2},
			{Name: "P2", ArrivalTime: 2, BurstTime: 1, Priority: &priority, CompletionTime: 4, TurnAroundTime: 2, WaitingTime: 1, ResponseTime: 1},
		},
		AverageWaitingTime:    0.5,
		AverageTurnAroundTime: 2,
		AverageResponseTime:   0.5,
		CpuThroughput:         0.5,
	}
}

func TestWriteSchedule(t *testing.T) {
	var buf bytes.Buffer

	WriteSchedule(&buf, sample())

	out := buf.String()
	assert.Contains(t, out, "Round-robin (quantum 2)")
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "Idle")
	assert.Contains(t, out, "0\t1\t3\t4")
	assert.Contains(t, out, "P2")
	assert.Contains(t, out, "0.50")
}

func TestWriteComparison(t *testing.T) {
	var buf bytes.Buffer
	fcfs := sample()
	fcfs.Policy = "fcfs"

	WriteComparison(&buf, responses.CompareResponse{Results: []responses.ScheduleResponse{fcfs, sample()}})

	out := buf.String()
	assert.Contains(t, out, "First-come, first-serve")
	assert.Contains(t, out, "Round-robin (quantum 2)")
}

func TestFormatSegment(t *testing.T) {
	assert.Equal(t, "P1 [0-5)", FormatSegment(responses.SegmentResponse{Process: "P1", End: 5}))
	assert.Equal(t, "Idle [5-7)", FormatSegment(responses.SegmentResponse{Start: 5, End: 7, Idle: true}))
}
