package responses

type ProcessResponse struct {
	Name           string  `json:"name"`
	ArrivalTime    int     `json:"arrival_time"`
	BurstTime      int     `json:"burst_time"`
	Priority       *int    `json:"priority,omitempty"`
	CompletionTime int     `json:"completion_time"`
	ResponseTime   float64 `json:"response_time"`
	TurnAroundTime float64 `json:"turn_around_time"`
	WaitingTime    float64 `json:"waiting_time"`
}

// SegmentResponse is one Gantt chart slot. Idle slots have an empty process name.
type SegmentResponse struct {
	Process string `json:"process,omitempty"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Idle    bool   `json:"idle,omitempty"`
}

type ScheduleResponse struct {
	Policy                string            `json:"policy"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             float64           `json:"total_time"`
	IdleTime              float64           `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	ContextSwitches       int               `json:"context_switches"`
	Gantt                 []SegmentResponse `json:"gantt"`
	Details               []ProcessResponse `json:"details"`
}

type CompareResponse struct {
	Results []ScheduleResponse `json:"results"`
}
