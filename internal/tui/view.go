package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylepreview/internal/application/preview"
	"github.com/alexisbeaulieu97/stylepreview/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	title := titleStyle.Render(fmt.Sprintf("stylepreview • %s", m.titleText()))
	sections = append(sections, title)

	progress := components.NewProgress(m.total).ViewWithFailures(m.completed, m.failed)
	sections = append(sections, sectionStyle.Render("Progress"), progress)

	if len(m.parts) > 0 {
		sections = append(sections, sectionStyle.Render("Parts"))
		sections = append(sections, renderPartEntries(components.NewPartList(m.parts).Entries()))
	}

	summary := components.NewSummary(components.SummaryData{
		Total:     m.total,
		Completed: m.completed,
		Failed:    m.failed,
		Elapsed:   m.elapsed,
		Finished:  m.finished,
		Cancelled: m.cancelled,
	}).View()
	if strings.TrimSpace(summary) != "" {
		sections = append(sections, sectionStyle.Render("Summary"), summaryStyle.Render(summary))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func renderPartEntries(entries []components.PartEntry) string {
	var lines []string
	for _, entry := range entries {
		line := fmt.Sprintf(" %s %s", StatusIcon(entry.Status), entry.Name)
		if entry.Status == preview.StatusDone && entry.Output != "" {
			line = fmt.Sprintf("%s → %s", line, outputStyle.Render(filepath.Base(entry.Output)))
		}
		if strings.TrimSpace(entry.Message) != "" {
			line = fmt.Sprintf("%s: %s", line, messageStyle.Render(entry.Message))
		}
		if entry.Duration > 0 {
			line = fmt.Sprintf("%s (%s)", line, entry.Duration.Truncate(time.Millisecond))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) titleText() string {
	if strings.TrimSpace(m.title) != "" {
		return m.title
	}
	return "Render"
}

// StatusIcon returns the styled glyph for a part status. Unknown statuses
// render as pending.
func StatusIcon(status preview.Status) string {
	mark, ok := statusMarks[status]
	if !ok {
		mark = pendingMark
	}
	return mark.style.Render(mark.glyph)
}
