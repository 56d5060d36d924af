package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestUpdateDoesNotCountPartTwice(t *testing.T) {
	m := NewModel("", []string{"A"}, false)
	updated, _ := m.Update(PartDoneMsg{Index: 0, Part: "A"})
	updated, _ = updated.(Model).Update(PartDoneMsg{Index: 0, Part: "A"})
	require.Equal(t, 1, updated.(Model).CompletedParts())
}

func TestUpdateBatchDoneQuitsInteractive(t *testing.T) {
	m := NewModel("", []string{"A"}, false)
	updated, cmd := m.Update(BatchDoneMsg{Elapsed: time.Second})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.True(t, updated.(Model).IsFinished())
}

func TestUpdateBatchDoneNonInteractive(t *testing.T) {
	m := NewModel("", []string{"A"}, true)
	updated, cmd := m.Update(BatchDoneMsg{})
	require.Nil(t, cmd)
	require.True(t, updated.(Model).IsFinished())
}

func TestUpdateHandlesCtrlC(t *testing.T) {
	m := NewModel("", nil, true)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.Nil(t, cmd)
	m = updated.(Model)
	require.True(t, m.Cancelled())
	require.True(t, m.IsFinished())
}
