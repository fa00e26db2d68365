package client

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
)

func TestClient_Schedule(t *testing.T) {
	c := NewClient("http://scheduler:9095/")
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	request := requests.ScheduleRequests{Jobs: []requests.Job{{Name: "P1", ArrivalTime: 0, BurstTime: 5}}}

	tests := []struct {
		name    string
		expects func()
		wantErr string
		want    int
	}{
		{
			name: "schedule computed",
			expects: func() {
				httpmock.RegisterResponder(
					"POST",
					"http://scheduler:9095/api/v1/rr",
					httpmock.NewStringResponder(
						http.StatusOK,
						`{"policy":"rr","time_quantum":2,"gantt":[{"process":"P1","start":0,"end":5}],"details":[{"name":"P1","burst_time":5}]}`,
					),
				)
			},
			want: 1,
		},
		{
			name: "validation error",
			expects: func() {
				httpmock.RegisterResponder(
					"POST",
					"http://scheduler:9095/api/v1/rr",
					httpmock.NewStringResponder(
						http.StatusBadRequest,
						`{"error":"invalid process field: time quantum must be positive, got 0"}`,
					),
				)
			},
			wantErr: "scheduler responded with status 400: invalid process field",
		},
		{
			name: "server unreachable",
			expects: func() {
				httpmock.RegisterResponder(
					"POST",
					"http://scheduler:9095/api/v1/rr",
					httpmock.NewErrorResponder(errors.New("connection refused")),
				)
			},
			wantErr: "connection refused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.expects()

			got, err := c.Schedule(core.RoundRobin, request)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "rr", got.Policy)
			assert.Len(t, got.Gantt, tt.want)
			assert.Equal(t, 5, got.Gantt[0].End)
		})
	}
}

func TestClient_Compare(t *testing.T) {
	c := NewClient("http://scheduler:9095")
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(
		"POST",
		"http://scheduler:9095/api/v1/all",
		httpmock.NewStringResponder(http.StatusOK, `{"results":[{"policy":"fcfs"},{"policy":"sjf"},{"policy":"priority"},{"policy":"rr"}]}`),
	)

	got, err := c.Compare(requests.ScheduleRequests{})

	assert.NoError(t, err)
	assert.Len(t, got.Results, 4)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestClient_StatusWithoutBody(t *testing.T) {
	c := NewClient("http://scheduler:9095")
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("POST", "http://scheduler:9095/api/v1/fcfs",
		httpmock.NewStringResponder(http.StatusInternalServerError, ""))

	_, err := c.Schedule(core.FirstComeFirstServe, requests.ScheduleRequests{})

	assert.EqualError(t, err, "scheduler responded with status 500")
}
