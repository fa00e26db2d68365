package replay

import (
	"context"
	"time"

	"cpu-scheduler/internal/responses"
)

// Frame is one step of a replay.
type Frame struct {
	Index   int
	Segment responses.SegmentResponse
}

// Player steps through an already computed Gantt chart. It keeps its own copy,
// so nothing a consumer does during playback can change the schedule.
type Player struct {
	segments []responses.SegmentResponse
	position int
}

func NewPlayer(segments []responses.SegmentResponse) *Player {
	copied := make([]responses.SegmentResponse, len(segments))
	copy(copied, segments)
	return &Player{segments: copied}
}

// Next returns the next frame, or false once the chart is exhausted.
func (p *Player) Next() (Frame, bool) {
	if p.position >= len(p.segments) {
		return Frame{}, false
	}
	frame := Frame{Index: p.position, Segment: p.segments[p.position]}
	p.position++
	return frame, true
}

func (p *Player) Reset() { p.position = 0 }

func (p *Player) Len() int { return len(p.segments) }

// Play calls fn for every remaining frame and then waits unitDelay per time
// unit of that segment. It stops early with ctx.Err() when ctx is cancelled.
func (p *Player) Play(ctx context.Context, unitDelay time.Duration, fn func(Frame)) error {
	for {
		frame, ok := p.Next()
		if !ok {
			return nil
		}
		fn(frame)

		if unitDelay <= 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		timer := time.NewTimer(time.Duration(frame.Segment.End-frame.Segment.Start) * unitDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}
