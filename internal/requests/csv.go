package requests

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrInvalidCSV = errors.New("invalid jobs file")

// LoadJobsCSV reads rows of the form name,arrival,burst[,priority].
// A first row whose arrival column is not a number is treated as a header.
func LoadJobsCSV(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrInvalidCSV, err)
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: line %d has %d columns", ErrInvalidCSV, i+1, len(row))
		}
		arrival, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf("%w: line %d arrival time %q", ErrInvalidCSV, i+1, row[1])
		}
		burst, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d burst time %q", ErrInvalidCSV, i+1, row[2])
		}
		job := Job{
			Name:        strings.TrimSpace(row[0]),
			ArrivalTime: arrival,
			BurstTime:   burst,
		}
		if len(row) == 4 && strings.TrimSpace(row[3]) != "" {
			priority, err := strconv.Atoi(strings.TrimSpace(row[3]))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d priority %q", ErrInvalidCSV, i+1, row[3])
			}
			job.Priority = &priority
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
