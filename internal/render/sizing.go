package render

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/alexisbeaulieu97/stylepreview/internal/domain/style"
)

// drawSized draws frame of img into bounds of dst according to the sizing
// type of bg. It reports false when the sizing type is unsupported and
// nothing was drawn.
//
// TILE draws exactly like STRETCH: the frame (or, with margins, each
// nine-slice cell) is scaled, never repeated.
func drawSized(dst draw.Image, img image.Image, frame, bounds image.Rectangle, bg Background) bool {
	switch bg.Sizing {
	case style.SizingTrueSize:
		r := image.Rectangle{Min: bounds.Min, Max: bounds.Min.Add(frame.Size())}
		draw.Draw(dst, r, img, frame.Min, draw.Over)
	case style.SizingStretch, style.SizingTile:
		if bg.Margins == nil {
			resampler.Scale(dst, bounds, img, frame, draw.Over, nil)
			return true
		}
		DrawNineSlice(dst, img, frame, bounds, ClampMargins(*bg.Margins, frame))
	default:
		return false
	}
	return true
}
