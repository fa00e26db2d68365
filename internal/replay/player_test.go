package replay

import (
	"context"
	"testing"
	"time"

	"cpu-scheduler/internal/responses"

	"github.com/stretchr/testify/assert"
)

func chart() []responses.SegmentResponse {
	return []responses.SegmentResponse{
		{Process: "P1", Start: 0, End: 2},
		{Start: 2, End: 3, Idle: true},
		{Process: "P2", Start: 3, End: 5},
	}
}

func TestPlayer_Next(t *testing.T) {
	p := NewPlayer(chart())

	var got []string
	for frame, ok := p.Next(); ok; frame, ok = p.Next() {
		got = append(got, frame.Segment.Process)
	}
	assert.Equal(t, []string{"P1", "", "P2"}, got)

	_, ok := p.Next()
	assert.False(t, ok)

	p.Reset()
	frame, ok := p.Next()
	assert.True(t, ok)
	assert.Equal(t, 0, frame.Index)
	assert.Equal(t, 3, p.Len())
}

func TestPlayer_CopiesChart(t *testing.T) {
	segments := chart()
	p := NewPlayer(segments)

	segments[0].Process = "changed"

	frame, _ := p.Next()
	assert.Equal(t, "P1", frame.Segment.Process)
}

func TestPlayer_Play(t *testing.T) {
	p := NewPlayer(chart())

	var frames []Frame
	err := p.Play(context.Background(), time.Millisecond, func(f Frame) {
		frames = append(frames, f)
	})

	assert.NoError(t, err)
	assert.Len(t, frames, 3)
	assert.Equal(t, 2, frames[2].Index)
}

func TestPlayer_PlayCancelled(t *testing.T) {
	segments := chart()
	p := NewPlayer(segments)
	ctx, cancel := context.WithCancel(context.Background())

	var frames []Frame
	err := p.Play(ctx, time.Hour, func(f Frame) {
		frames = append(frames, f)
		cancel()
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, frames, 1)
	assert.Equal(t, chart(), segments)
}
