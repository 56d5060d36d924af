package components

import (
	"fmt"
	"strings"
	"time"
)

// SummaryData aggregates counts for rendering summaries.
type SummaryData struct {
	Total     int
	Completed int
	Failed    int
	Elapsed   time.Duration
	Finished  bool
	Cancelled bool
}

// Summary renders a textual batch summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	var lines []string
	if s.data.Total > 0 {
		lines = append(lines, fmt.Sprintf("Parts: %d/%d rendered", s.data.Completed-s.data.Failed, s.data.Total))
	}
	if s.data.Failed > 0 {
		lines = append(lines, fmt.Sprintf("Failed: %d", s.data.Failed))
	}

	switch {
	case s.data.Cancelled:
		lines = append(lines, "Render cancelled")
	case s.data.Finished && s.data.Total > 0:
		status := "Render finished successfully"
		if s.data.Failed > 0 {
			status = "Render finished with failures"
		} else if s.data.Completed < s.data.Total {
			status = "Render finished with pending parts"
		}
		if s.data.Elapsed > 0 {
			status = fmt.Sprintf("%s in %s", status, s.data.Elapsed.Truncate(time.Millisecond))
		}
		lines = append(lines, status)
	}

	return strings.Join(lines, "\n")
}
