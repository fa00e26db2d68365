package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTimeline(t *testing.T) {
	ass := assert.New(t)

	tests := []struct {
		name    string
		events  []Event
		want    []Segment
		wantErr bool
	}{
		{
			name: "coalesces abutting units",
			events: []Event{
				{Process: "P1", Start: 0, End: 1},
				{Process: "P2", Start: 1, End: 2},
				{Process: "P2", Start: 2, End: 3},
				{Process: "P2", Start: 3, End: 4},
				{Process: "P1", Start: 4, End: 8},
			},
			want: []Segment{
				{Process: "P1", Start: 0, End: 1},
				{Process: "P2", Start: 1, End: 4},
				{Process: "P1", Start: 4, End: 8},
			},
		},
		{
			name: "keeps idle slots",
			events: []Event{
				{Process: IdleProcess, Start: 0, End: 2},
				{Process: "P1", Start: 2, End: 5},
			},
			want: []Segment{
				{Process: IdleProcess, Start: 0, End: 2},
				{Process: "P1", Start: 2, End: 5},
			},
		},
		{
			name:    "empty",
			wantErr: true,
		},
		{
			name:    "does not start at zero",
			events:  []Event{{Process: "P1", Start: 1, End: 3}},
			wantErr: true,
		},
		{
			name: "gap",
			events: []Event{
				{Process: "P1", Start: 0, End: 2},
				{Process: "P2", Start: 3, End: 4},
			},
			wantErr: true,
		},
		{
			name: "overlap",
			events: []Event{
				{Process: "P1", Start: 0, End: 3},
				{Process: "P2", Start: 2, End: 4},
			},
			wantErr: true,
		},
		{
			name:    "zero length",
			events:  []Event{{Process: "P1", Start: 0, End: 0}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildTimeline(tt.events)
			if tt.wantErr {
				ass.True(errors.Is(err, ErrMalformedTimeline))
				ass.Nil(got)
				return
			}
			ass.NoError(err)
			ass.Equal(tt.want, got)
		})
	}
}

func TestMeasureCpu(t *testing.T) {
	segments := []Segment{
		{Process: "P1", Start: 0, End: 2},
		{Process: IdleProcess, Start: 2, End: 4},
		{Process: "P2", Start: 4, End: 5},
		{Process: "P1", Start: 5, End: 8},
	}

	got := MeasureCpu(segments)

	assert.Equal(t, CpuMetric{TotalTime: 8, UtilizationTime: 6, IdleTime: 2, ContextSwitches: 2}, got)
	assert.InDelta(t, 0.75, got.Utilization(), 1e-9)
	assert.InDelta(t, 0.25, got.Throughput(2), 1e-9)
	assert.Zero(t, CpuMetric{}.Utilization())
}
