package core

import (
	"fmt"
	"strings"
)

type PolicyKind int

const (
	FirstComeFirstServe PolicyKind = iota
	ShortestJobFirst
	Priority
	RoundRobin
)

// Policies lists every policy in presentation order.
var Policies = []PolicyKind{FirstComeFirstServe, ShortestJobFirst, Priority, RoundRobin}

func (p PolicyKind) String() string {
	switch p {
	case FirstComeFirstServe:
		return "fcfs"
	case ShortestJobFirst:
		return "sjf"
	case Priority:
		return "priority"
	case RoundRobin:
		return "rr"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// Title is the human readable policy name used in reports.
func (p PolicyKind) Title() string {
	switch p {
	case FirstComeFirstServe:
		return "First-come, first-serve"
	case ShortestJobFirst:
		return "Shortest-job-first"
	case Priority:
		return "Priority (preemptive)"
	case RoundRobin:
		return "Round-robin"
	}
	return p.String()
}

func ParsePolicyKind(name string) (PolicyKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs":
		return FirstComeFirstServe, nil
	case "sjf":
		return ShortestJobFirst, nil
	case "priority":
		return Priority, nil
	case "rr":
		return RoundRobin, nil
	}
	return 0, fmt.Errorf("unknown scheduling policy %q", name)
}
