package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stylepreview/internal/application/preview"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, nil
	case PartStartMsg:
		if e := m.entry(msg.Index, msg.Part); e != nil {
			e.Status = preview.StatusRunning
		}
		return m, nil
	case PartDoneMsg:
		e := m.entry(msg.Index, msg.Part)
		if e == nil {
			return m, nil
		}
		previouslyCompleted := e.Status == preview.StatusDone || e.Status == preview.StatusFailed
		e.Output = msg.Output
		e.Duration = msg.Duration
		e.Status = preview.StatusDone
		e.Message = ""
		if msg.Err != nil {
			e.Status = preview.StatusFailed
			e.Message = msg.Err.Error()
		}
		if !previouslyCompleted {
			m.completed++
			if msg.Err != nil {
				m.failed++
			}
		}
		return m, nil
	case BatchDoneMsg:
		m.elapsed = msg.Elapsed
		m.finished = true
		if m.nonInteractive {
			return m, nil
		}
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancelled = true
			m.finished = true
			if m.nonInteractive {
				return m, nil
			}
			return m, tea.Quit
		}
	case tea.QuitMsg:
		m.finished = true
		return m, nil
	}

	return m, nil
}
