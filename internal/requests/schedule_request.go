package requests

type Job struct {
	Name        string `json:"name"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    *int   `json:"priority,omitempty"`
}
type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
	// TimeQuantum overrides the configured round robin quantum when set.
	TimeQuantum *int `json:"time_quantum,omitempty"`
}
