package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylepreview/internal/application/preview"
)

func TestNewModelInitialisesState(t *testing.T) {
	m := NewModel("Aero", []string{"A", "B"}, false)

	require.Equal(t, "Aero", m.title)
	require.Equal(t, 2, m.TotalParts())
	require.Zero(t, m.CompletedParts())
	require.False(t, m.IsFinished())
	require.Equal(t, StatusPending, m.parts[0].Status)
}

func TestModelInitReturnsTickCommand(t *testing.T) {
	m := NewModel("", nil, false)
	require.NotNil(t, m.Init())
}

func TestModelTracksPartResults(t *testing.T) {
	m := NewModel("Aero", []string{"A", "B"}, false)

	updated, _ := m.Update(PartStartMsg{Index: 0, Part: "A"})
	m = updated.(Model)
	require.Equal(t, preview.StatusRunning, m.parts[0].Status)

	updated, _ = m.Update(PartDoneMsg{Index: 0, Part: "A", Output: "/out/a.png"})
	m = updated.(Model)
	require.Equal(t, preview.StatusDone, m.parts[0].Status)
	require.Equal(t, 1, m.CompletedParts())

	updated, _ = m.Update(PartDoneMsg{Index: 1, Part: "B", Err: errors.New("decode error")})
	m = updated.(Model)
	require.Equal(t, preview.StatusFailed, m.parts[1].Status)
	require.Equal(t, "decode error", m.parts[1].Message)
	require.Equal(t, 2, m.CompletedParts())
	require.Equal(t, 1, m.FailedParts())
}

func TestModelAddsUnknownParts(t *testing.T) {
	m := NewModel("Aero", []string{"A"}, true)

	updated, _ := m.Update(PartStartMsg{Index: 5, Part: "Z"})
	m = updated.(Model)
	require.Equal(t, 2, m.TotalParts())
	require.Equal(t, "Z", m.parts[1].Name)
}

func TestModelMarksFinished(t *testing.T) {
	m := NewModel("", nil, false)

	updated, cmd := m.Update(tea.QuitMsg{})
	require.Nil(t, cmd)
	m = updated.(Model)
	require.True(t, m.IsFinished())
}
