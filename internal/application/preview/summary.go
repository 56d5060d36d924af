package preview

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
	"github.com/alexisbeaulieu97/stylepreview/internal/render"
)

// PartSummary describes a part for listings.
type PartSummary struct {
	Name       string `json:"name"`
	States     int    `json:"states"`
	Background string `json:"background"`
}

// Parts summarises every part of the session's style in declaration order.
func (s *Session) Parts() []PartSummary {
	out := make([]PartSummary, 0, len(s.Style.Parts))
	for _, p := range s.Style.Parts {
		summary := PartSummary{Name: p.Name, States: len(p.States), Background: "none"}
		if state, ok := p.FirstState(); ok {
			if bg, ok := render.ResolveBackground(state.Properties); ok {
				summary.Background = DescribeBackground(bg)
			}
		}
		out = append(out, summary)
	}
	return out
}

// DescribeBackground renders a one-line description of a resolved background.
func DescribeBackground(bg render.Background) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(bg.Fill.String()))
	switch bg.Fill {
	case style.BackgroundImageFill:
		fmt.Fprintf(&b, " resource=%d %s", bg.Image.Token, strings.ToLower(bg.Sizing.String()))
		if bg.Count > 1 {
			fmt.Fprintf(&b, " frames=%d %s", bg.Count, strings.ToLower(bg.Layout.String()))
		}
		if bg.Margins != nil {
			fmt.Fprintf(&b, " margins=%s", bg.Margins)
		}
	default:
		fmt.Fprintf(&b, " #%02x%02x%02x", bg.FillColor.R, bg.FillColor.G, bg.FillColor.B)
	}
	return b.String()
}
