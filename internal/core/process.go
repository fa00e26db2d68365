package core

// ProcessDescriptor is the validated, immutable form of a submitted job.
// Order is the job's position after the stable arrival sort and breaks every
// remaining tie between processes.
type ProcessDescriptor struct {
	Name        string
	ArrivalTime int
	BurstTime   int
	Priority    int
	HasPriority bool
	Order       int
}

type Phase int

const (
	Unarrived Phase = iota
	Ready
	Running
	Completed
)

func (p Phase) String() string {
	switch p {
	case Unarrived:
		return "unarrived"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// RuntimeProcess is the mutable per-run state of one process.
type RuntimeProcess struct {
	ProcessDescriptor
	RemainingTime int
	Phase         Phase
}

func NewRuntimeProcesses(descriptors []ProcessDescriptor) []*RuntimeProcess {
	processes := make([]*RuntimeProcess, 0, len(descriptors))
	for _, d := range descriptors {
		processes = append(processes, &RuntimeProcess{
			ProcessDescriptor: d,
			RemainingTime:     d.BurstTime,
			Phase:             Unarrived,
		})
	}
	return processes
}

// ArrivedBefore orders processes by arrival time, then input order.
func (p *RuntimeProcess) ArrivedBefore(other *RuntimeProcess) bool {
	if p.ArrivalTime != other.ArrivalTime {
		return p.ArrivalTime < other.ArrivalTime
	}
	return p.Order < other.Order
}

type Metrics struct {
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
	ResponseTime   int
}
