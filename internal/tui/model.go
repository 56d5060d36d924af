package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stylepreview/internal/application/preview"
	"github.com/alexisbeaulieu97/stylepreview/internal/tui/components"
)

// StatusPending marks a part that has not started rendering.
const StatusPending preview.Status = "pending"

// PartStartMsg indicates a part has started rendering.
type PartStartMsg struct {
	Index int
	Part  string
}

// PartDoneMsg reports that a part has finished, successfully or not.
type PartDoneMsg struct {
	Index    int
	Part     string
	Output   string
	Err      error
	Duration time.Duration
}

// BatchDoneMsg signals that the batch has finished.
type BatchDoneMsg struct {
	Elapsed time.Duration
}

type tickMsg struct{}

// Model contains the Bubbletea state for the batch render TUI.
type Model struct {
	title          string
	parts          []components.PartEntry
	total          int
	completed      int
	failed         int
	elapsed        time.Duration
	finished       bool
	cancelled      bool
	nonInteractive bool
}

// NewModel constructs a TUI model tracking the given parts in order.
func NewModel(title string, parts []string, nonInteractive bool) Model {
	m := Model{
		title:          title,
		parts:          make([]components.PartEntry, len(parts)),
		total:          len(parts),
		nonInteractive: nonInteractive,
	}
	for i, name := range parts {
		m.parts[i] = components.PartEntry{Name: name, Status: StatusPending}
	}
	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Millisecond, func(time.Time) tea.Msg { return tickMsg{} })
}

// TotalParts returns the total number of parts tracked by the model.
func (m Model) TotalParts() int {
	return m.total
}

// CompletedParts returns the number of parts that finished, including failures.
func (m Model) CompletedParts() int {
	return m.completed
}

// FailedParts returns the number of parts that failed.
func (m Model) FailedParts() int {
	return m.failed
}

// IsFinished reports whether the batch has completed.
func (m Model) IsFinished() bool {
	return m.finished
}

// Cancelled reports whether the user interrupted the batch.
func (m Model) Cancelled() bool {
	return m.cancelled
}

func (m *Model) entry(index int, name string) *components.PartEntry {
	if index >= 0 && index < len(m.parts) && (name == "" || m.parts[index].Name == name) {
		return &m.parts[index]
	}
	for i := range m.parts {
		if m.parts[i].Name == name {
			return &m.parts[i]
		}
	}
	if name == "" {
		return nil
	}
	m.parts = append(m.parts, components.PartEntry{Name: name, Status: StatusPending})
	m.total++
	return &m.parts[len(m.parts)-1]
}
