package requests

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadJobsCSV(t *testing.T) {
	ass := assert.New(t)

	tests := []struct {
		name    string
		input   string
		want    []Job
		wantErr bool
	}{
		{
			name:  "with header and priorities",
			input: "name,arrival,burst,priority\nP1,0,5,2\nP2,1,3,1\n",
			want: []Job{
				{Name: "P1", ArrivalTime: 0, BurstTime: 5, Priority: intPtr(2)},
				{Name: "P2", ArrivalTime: 1, BurstTime: 3, Priority: intPtr(1)},
			},
		},
		{
			name:  "without header, blank priority",
			input: "P1, 0, 7\nP2, 2, 4,\n",
			want: []Job{
				{Name: "P1", ArrivalTime: 0, BurstTime: 7},
				{Name: "P2", ArrivalTime: 2, BurstTime: 4},
			},
		},
		{
			name:    "bad burst",
			input:   "P1,0,x\n",
			wantErr: true,
		},
		{
			name:    "too few columns",
			input:   "P1,0\n",
			wantErr: true,
		},
		{
			name:    "bad priority",
			input:   "P1,0,3,high\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadJobsCSV(strings.NewReader(tt.input))
			if tt.wantErr {
				ass.True(errors.Is(err, ErrInvalidCSV))
				return
			}
			ass.NoError(err)
			ass.Equal(tt.want, got)
		})
	}
}

func intPtr(v int) *int { return &v }
