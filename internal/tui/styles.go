package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/stylepreview/internal/application/preview"
)

// Colours are ANSI 256 indexes.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111")).MarginTop(1)
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	outputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("109"))
	summaryStyle = lipgloss.NewStyle().MarginTop(1)
)

type statusMark struct {
	glyph string
	style lipgloss.Style
}

var (
	pendingMark = statusMark{"…", lipgloss.NewStyle().Foreground(lipgloss.Color("240"))}

	statusMarks = map[preview.Status]statusMark{
		preview.StatusRunning: {"⏳", lipgloss.NewStyle().Foreground(lipgloss.Color("75"))},
		preview.StatusDone:    {"✓", lipgloss.NewStyle().Foreground(lipgloss.Color("78"))},
		preview.StatusFailed:  {"✗", lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)},
	}
)
