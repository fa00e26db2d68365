package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

// WriteSchedule prints a title, the Gantt chart and the per-process table of
// one schedule.
func WriteSchedule(w io.Writer, schedule responses.ScheduleResponse) {
	outputTitle(w, title(schedule))
	outputGantt(w, schedule.Gantt)
	outputSchedule(w, schedule)
}

// WriteComparison prints one row of averages per policy.
func WriteComparison(w io.Writer, compare responses.CompareResponse) {
	outputTitle(w, "Policy comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg wait", "Avg turnaround", "Avg response", "Switches", "Utilization", "Throughput"})
	for _, s := range compare.Results {
		table.Append([]string{
			title(s),
			fmt.Sprintf("%.2f", s.AverageWaitingTime),
			fmt.Sprintf("%.2f", s.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", s.AverageResponseTime),
			fmt.Sprint(s.ContextSwitches),
			fmt.Sprintf("%.0f%%", s.CpuUtilization*100),
			fmt.Sprintf("%.2f/t", s.CpuThroughput),
		})
	}
	table.Render()
}

// FormatSegment renders a single Gantt slot, e.g. "P1 [0-5)".
func FormatSegment(s responses.SegmentResponse) string {
	return fmt.Sprintf("%s [%d-%d)", label(s), s.Start, s.End)
}

func title(schedule responses.ScheduleResponse) string {
	policy, err := core.ParsePolicyKind(schedule.Policy)
	if err != nil {
		return schedule.Policy
	}
	if policy == core.RoundRobin {
		return fmt.Sprintf("%s (quantum %d)", policy.Title(), schedule.TimeQuantum)
	}
	return policy.Title()
}

func label(s responses.SegmentResponse) string {
	if s.Idle {
		return "Idle"
	}
	return s.Process
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []responses.SegmentResponse) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, s := range gantt {
		name := label(s)
		padding := strings.Repeat(" ", (8-len(name))/2)
		if len(name) >= 8 {
			padding = " "
		}
		_, _ = fmt.Fprint(w, padding, name, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(s.Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(s.End))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, schedule responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Response", "Exit"})
	for _, d := range schedule.Details {
		priority := "-"
		if d.Priority != nil {
			priority = fmt.Sprint(*d.Priority)
		}
		table.Append([]string{
			d.Name,
			priority,
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.ResponseTime),
			fmt.Sprint(d.CompletionTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", schedule.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", schedule.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", schedule.AverageResponseTime),
		fmt.Sprintf("Throughput\n%.2f/t", schedule.CpuThroughput)})
	table.Render()
}
