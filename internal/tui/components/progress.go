package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const progressWidth = 30

var (
	countStyle  = lipgloss.NewStyle().Bold(true)
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Progress is the batch bar: finished parts over total, with failures called
// out after the bar.
type Progress struct {
	bar   progress.Model
	total int
}

func NewProgress(total int) Progress {
	bar := progress.New(progress.WithGradient("#5A56E0", "#3DDC97"), progress.WithoutPercentage())
	bar.Width = progressWidth
	return Progress{bar: bar, total: total}
}

// View draws the bar for finished parts. The bar saturates at full; the count
// does not.
func (p Progress) View(finished int) string {
	return p.ViewWithFailures(finished, 0)
}

// ViewWithFailures is View plus a "N failed" suffix when failed is positive.
func (p Progress) ViewWithFailures(finished, failed int) string {
	fraction := 0.0
	if p.total > 0 && finished > 0 {
		fraction = min(float64(finished)/float64(p.total), 1)
	}

	row := []string{countStyle.Render(fmt.Sprintf("%d/%d", finished, p.total)), " ", p.bar.ViewAs(fraction)}
	if failed > 0 {
		row = append(row, " ", failedStyle.Render(fmt.Sprintf("%d failed", failed)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, row...)
}
