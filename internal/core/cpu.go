package core

// CpuMetric summarises how the single virtual CPU spent a timeline.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
	ContextSwitches int
}

// Utilization is the busy share of the total time.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per time unit.
func (m CpuMetric) Throughput(processCount int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(processCount) / float64(m.TotalTime)
}

// MeasureCpu counts busy and idle time and the switches between two different
// processes. Passing through idle between two processes counts as one switch.
func MeasureCpu(segments []Segment) CpuMetric {
	var metric CpuMetric
	var last string
	for _, s := range segments {
		if s.Idle() {
			metric.IdleTime += s.Length()
			continue
		}
		metric.UtilizationTime += s.Length()
		if last != "" && last != s.Process {
			metric.ContextSwitches++
		}
		last = s.Process
	}
	metric.TotalTime = Makespan(segments)
	return metric
}
