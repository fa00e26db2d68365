package core

import "fmt"

// IdleProcess is the subject of segments where the CPU runs nothing.
const IdleProcess = ""

// Event is a raw execution interval reported by the simulation driver.
type Event struct {
	Process string
	Start   int
	End     int
}

// Segment is one entry of the final Gantt chart. End is exclusive.
type Segment struct {
	Process string
	Start   int
	End     int
}

func (s Segment) Idle() bool { return s.Process == IdleProcess }

func (s Segment) Length() int { return s.End - s.Start }

// BuildTimeline merges abutting events of the same subject and checks that the
// result covers [0, makespan) without gaps or overlaps.
func BuildTimeline(events []Event) ([]Segment, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: no events", ErrMalformedTimeline)
	}

	segments := make([]Segment, 0, len(events))
	clock := 0
	for i, e := range events {
		if e.Start >= e.End {
			return nil, fmt.Errorf("%w: event %d [%d,%d) is empty", ErrMalformedTimeline, i, e.Start, e.End)
		}
		if e.Start != clock {
			return nil, fmt.Errorf("%w: event %d starts at %d, expected %d", ErrMalformedTimeline, i, e.Start, clock)
		}
		clock = e.End

		if n := len(segments); n > 0 && segments[n-1].Process == e.Process {
			segments[n-1].End = e.End
			continue
		}
		segments = append(segments, Segment{Process: e.Process, Start: e.Start, End: e.End})
	}
	return segments, nil
}

// Makespan is the end of the last segment.
func Makespan(segments []Segment) int {
	if len(segments) == 0 {
		return 0
	}
	return segments[len(segments)-1].End
}
