package render

import (
	"image"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
)

// ClampMargins fits m inside frame. Negative insets become zero and the
// trailing inset of each axis is reduced first, so the interior keeps at least
// one pixel whenever the frame is at least one pixel wide (or tall).
func ClampMargins(m style.Margins, frame image.Rectangle) style.Margins {
	m.Left, m.Right = clampAxis(m.Left, m.Right, frame.Dx())
	m.Top, m.Bottom = clampAxis(m.Top, m.Bottom, frame.Dy())
	return m
}

func clampAxis(lead, trail, size int) (int, int) {
	lead = max(lead, 0)
	trail = max(trail, 0)
	if size <= 1 {
		return 0, 0
	}
	limit := size - 1
	lead = min(lead, limit)
	if lead+trail > limit {
		trail = limit - lead
	}
	return lead, trail
}
